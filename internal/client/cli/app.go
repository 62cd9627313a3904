package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrijs2005/timeflux/internal/client/config"
	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/client/provider"
	"github.com/dmitrijs2005/timeflux/internal/client/repositories/kv"
	"github.com/dmitrijs2005/timeflux/internal/client/services"
	"github.com/dmitrijs2005/timeflux/internal/logging"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	holidaySvc services.HolidayService
	eventSvc   services.EventService
	clock      timex.Clock
	reader     *bufio.Reader

	// nowMillis is the shared "now" snapshot; every card rendered in one
	// pass uses the same value so simultaneously displayed countdowns
	// never drift apart.
	nowMillis atomic.Int64

	mu     sync.Mutex
	sortBy models.SortOption
	unit   models.TimeUnit

	cron *cron.Cron
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	clock := timex.SystemClock{}

	store, err := kv.OpenFileStore(c.StorePath)
	if err != nil {
		// A broken store file is recovered as empty, not fatal.
		log.Warn(ctx, "local store unreadable, starting empty", "path", c.StorePath, "error", err)
	}

	var remote provider.Provider
	if c.APIKey != "" {
		gemini, err := provider.NewGemini(ctx, c.APIKey, c.GeminiModel, clock)
		if err != nil {
			log.Error(ctx, "gemini client unavailable, falling back to local holidays", "error", err)
		} else {
			remote = gemini
		}
	}
	holidayProvider := provider.New(remote, clock, log)

	app := &App{
		config:     c,
		log:        log,
		holidaySvc: services.NewHolidayService(holidayProvider, store, clock, log),
		eventSvc:   services.NewEventService(store, clock, log),
		clock:      clock,
		reader:     bufio.NewReader(os.Stdin),
		sortBy:     models.SortDateAscending,
		unit:       models.UnitDays,
	}
	app.nowMillis.Store(clock.Now().UnixMilli())
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// Now returns the shared now snapshot.
func (a *App) Now() time.Time {
	return time.UnixMilli(a.nowMillis.Load())
}

func (a *App) viewOptions() (models.SortOption, models.TimeUnit) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sortBy, a.unit
}

// StartBackgroundTasks launches the periodic jobs owned by the app shell:
// the cron-driven cache freshness re-check and the now-snapshot ticker. Both
// stop when ctx is cancelled; an in-flight holiday fetch is not cancelled,
// only no longer rescheduled.
func (a *App) StartBackgroundTasks(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(a.config.RefreshSpec, func() {
		fetchCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		a.holidaySvc.GetHolidays(fetchCtx, false)
	})
	if err != nil {
		return fmt.Errorf("invalid refresh spec %q: %w", a.config.RefreshSpec, err)
	}
	c.Start()
	a.cron = c

	go a.runNowTicker(ctx)
	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return nil
}

func (a *App) runNowTicker(ctx context.Context) {
	ticker := time.NewTicker(a.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.nowMillis.Store(a.clock.Now().UnixMilli())
		case <-ctx.Done():
			return
		}
	}
}
