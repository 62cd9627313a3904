package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/timeflux/internal/flagx"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "1s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	StorePath    string         `json:"store_path"`
	APIKey       string         `json:"api_key"`
	GeminiModel  string         `json:"gemini_model"`
	RefreshSpec  string         `json:"refresh_spec"`
	TickInterval timex.Duration `json:"tick_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is given, no JSON is loaded. Fields absent from the file keep
// their current values. Panics on read or unmarshal errors (caller should
// recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.RefreshSpec != "" {
		cfg.RefreshSpec = jc.RefreshSpec
	}
	if jc.TickInterval.Duration != 0 {
		cfg.TickInterval = time.Duration(jc.TickInterval.Duration)
	}
}
