package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/timeflux/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   path to the local store file (default from Config)
//	-m string   Gemini model name (default from Config)
//	-r string   cron spec for the background freshness re-check
//	-t int      now-snapshot refresh interval in seconds
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-m", "-r", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path to the local store file")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "Gemini model name")
	fs.StringVar(&cfg.RefreshSpec, "r", cfg.RefreshSpec, "cron spec for the background freshness re-check")
	tickSeconds := fs.Int("t", int(cfg.TickInterval.Seconds()), "now-snapshot refresh interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TickInterval = time.Duration(*tickSeconds) * time.Second
}
