package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/client/timeline"
)

func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: rm <id>")
		return nil
	}

	removed, err := a.eventSvc.Remove(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "removing event", "id", args[0], "error", err)
		return err
	}
	if removed {
		printlnFn("Removed " + args[0])
	} else {
		printlnFn("No such event: " + args[0])
	}
	return nil
}

func (a *App) Sort(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: sort <date|title|created>")
		return nil
	}
	sortBy, err := models.ParseSortOption(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	a.mu.Lock()
	a.sortBy = sortBy
	a.mu.Unlock()
	return nil
}

func (a *App) Unit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: unit <days|hours|minutes|seconds>")
		return nil
	}
	unit, err := models.ParseTimeUnit(args[0])
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	a.mu.Lock()
	a.unit = unit
	a.mu.Unlock()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	holidays := a.holidaySvc.GetHolidays(ctx, true)
	printlnFn(fmt.Sprintf("Holidays refreshed: %d", len(holidays)))
	return nil
}

// Watch re-renders the timeline once per tick for the given number of
// seconds (default 10), every pass on its own shared now snapshot.
func (a *App) Watch(ctx context.Context, args []string) error {
	seconds := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			printlnFn("Usage: watch [seconds]")
			return nil
		}
		seconds = n
	}

	holidays := a.holidaySvc.GetHolidays(ctx, false)
	customs := a.eventSvc.Load(ctx)
	sortBy, _ := a.viewOptions()
	view := timeline.View(holidays, customs, sortBy)

	deadline := a.clock.Now().Add(time.Duration(seconds) * time.Second)
	ticker := time.NewTicker(a.config.TickInterval)
	defer ticker.Stop()

	for {
		now := a.Now()
		_, unit := a.viewOptions()
		printlnFn(fmt.Sprintf("--- %s ---", now.Format("15:04:05")))
		for _, e := range view {
			printlnFn(renderEvent(e, now, unit))
		}
		if !a.clock.Now().Before(deadline) {
			return nil
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}
