package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/timeflux/internal/client/config"
	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/client/provider"
	"github.com/dmitrijs2005/timeflux/internal/client/repositories/kv"
	"github.com/dmitrijs2005/timeflux/internal/client/services"
	"github.com/dmitrijs2005/timeflux/internal/logging"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

// newTestApp builds an App over an in-memory store, the fallback-only
// provider and a manual clock, with stdin replaced by the given script.
func newTestApp(t *testing.T, input string) (*App, *timex.ManualClock) {
	t.Helper()

	clock := timex.NewManualClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local))
	store := kv.NewMemoryStore()
	log := logging.NewDiscard()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	app := &App{
		config:     cfg,
		log:        log,
		holidaySvc: services.NewHolidayService(provider.New(nil, clock, log), store, clock, log),
		eventSvc:   services.NewEventService(store, clock, log),
		clock:      clock,
		reader:     bufio.NewReader(strings.NewReader(input)),
		sortBy:     models.SortDateAscending,
		unit:       models.UnitDays,
	}
	app.nowMillis.Store(clock.Now().UnixMilli())
	return app, clock
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		out = append(out, fmt.Sprint(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestApp_SortAndUnitCommands(t *testing.T) {
	app, _ := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, app.Sort(ctx, []string{"created"}))
	require.NoError(t, app.Unit(ctx, []string{"seconds"}))

	sortBy, unit := app.viewOptions()
	assert.Equal(t, models.SortCreatedDesc, sortBy)
	assert.Equal(t, models.UnitSeconds, unit)
	assert.Equal(t, "(created_desc/seconds)", app.getStatus())
}

func TestApp_SortRejectsUnknownOption(t *testing.T) {
	app, _ := newTestApp(t, "")
	out := captureOutput(t)

	require.NoError(t, app.Sort(context.Background(), []string{"bogus"}))

	sortBy, _ := app.viewOptions()
	assert.Equal(t, models.SortDateAscending, sortBy)
	assert.NotEmpty(t, *out)
}

func TestApp_RefreshReportsCount(t *testing.T) {
	app, _ := newTestApp(t, "")
	out := captureOutput(t)

	require.NoError(t, app.Refresh(context.Background()))

	// The fallback provider always yields five holidays.
	assert.Contains(t, *out, "Holidays refreshed: 5")
}

func TestApp_AddThenListShowsEvent(t *testing.T) {
	// Scripted add dialog: title, date, time, color.
	app, _ := newTestApp(t, "Launch\n2030-01-01\n09:00\nocean\n")
	out := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, app.Add(ctx))
	require.NoError(t, app.List(ctx))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Created Launch")
	assert.Contains(t, joined, "[个人] Launch")
}

func TestApp_AddRejectsEmptyTitle(t *testing.T) {
	app, _ := newTestApp(t, "\n2030-01-01\n\n\n")
	out := captureOutput(t)

	require.NoError(t, app.Add(context.Background()))

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Rejected:")
	assert.Empty(t, app.eventSvc.Load(context.Background()))
}

func TestApp_RemoveAbsentID(t *testing.T) {
	app, _ := newTestApp(t, "")
	out := captureOutput(t)

	require.NoError(t, app.Remove(context.Background(), []string{"custom-missing"}))

	assert.Contains(t, *out, "No such event: custom-missing")
}

func TestApp_NowTracksSnapshot(t *testing.T) {
	app, clock := newTestApp(t, "")

	before := app.Now()
	clock.Advance(time.Hour)
	// The snapshot only moves when the ticker stores it.
	assert.Equal(t, before, app.Now())

	app.nowMillis.Store(clock.Now().UnixMilli())
	assert.Equal(t, before.Add(time.Hour), app.Now())
}
