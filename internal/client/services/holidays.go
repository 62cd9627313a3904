// Package services contains the holiday cache manager and the custom event
// store. Both absorb their recoverable failures and hand the CLI safe
// defaults; the only error surfaced to an interactive caller is a validation
// error on event creation.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/client/provider"
	"github.com/dmitrijs2005/timeflux/internal/client/repositories/kv"
	"github.com/dmitrijs2005/timeflux/internal/common"
	"github.com/dmitrijs2005/timeflux/internal/logging"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

const refreshKey = "holiday-refresh"

// HolidayService owns the freshness policy for provider results.
type HolidayService interface {
	// GetHolidays returns the current holiday list. With force false a
	// fresh cache (younger than the 24h window) is served without a
	// provider call; otherwise the provider is invoked and, on success,
	// the cache is replaced. It never returns an error: on failure the
	// prior cache (or an empty list) is served.
	GetHolidays(ctx context.Context, force bool) []models.Event
}

type holidayService struct {
	provider provider.Provider
	store    kv.Store
	clock    timex.Clock
	log      logging.Logger
	group    singleflight.Group
}

func NewHolidayService(p provider.Provider, store kv.Store, clock timex.Clock, log logging.Logger) HolidayService {
	return &holidayService{provider: p, store: store, clock: clock, log: log}
}

func (s *holidayService) GetHolidays(ctx context.Context, force bool) []models.Event {
	if !force {
		if events, err := s.readFreshCache(); err == nil {
			return events
		} else {
			s.log.Debug(ctx, "holiday cache not usable", "reason", err)
		}
	}

	// Concurrent refreshes (background check vs. manual force) collapse
	// into one provider call; every waiter gets the same result. refresh
	// absorbs its own failures, so the group never returns an error.
	v, _, _ := s.group.Do(refreshKey, func() (any, error) {
		return s.refresh(ctx), nil
	})
	return v.([]models.Event)
}

// readFreshCache returns the cached payload when both cache entries are
// present, the timestamp is within the freshness window and the payload
// parses. Any other state reports why via the returned error.
func (s *holidayService) readFreshCache() ([]models.Event, error) {
	tsRaw, tsOK, err := s.store.Get(common.CacheKeyLastFetch)
	if err != nil {
		return nil, fmt.Errorf("reading fetch timestamp: %w", err)
	}
	payload, plOK, err := s.store.Get(common.CacheKeyHolidays)
	if err != nil {
		return nil, fmt.Errorf("reading payload: %w", err)
	}
	if !tsOK || !plOK {
		return nil, common.ErrCacheMiss
	}

	fetchedAt, err := strconv.ParseInt(tsRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", common.ErrCachePayloadCorrupt, tsRaw)
	}
	age := s.clock.Now().UnixMilli() - fetchedAt
	if age >= common.CacheFreshnessWindow.Milliseconds() {
		return nil, fmt.Errorf("%w: age %dms", common.ErrCacheMiss, age)
	}

	events, err := decodeEvents(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCachePayloadCorrupt, err)
	}
	return events, nil
}

// refresh invokes the provider and, on success, replaces both cache entries
// in one write. On failure the prior cache is left untouched and served if
// still parseable.
func (s *holidayService) refresh(ctx context.Context) []models.Event {
	events, err := s.provider.Fetch(ctx)
	if err != nil {
		s.log.Error(ctx, "holiday provider failed", "error", err)
		return s.cachedOrEmpty(ctx)
	}

	payload, err := json.Marshal(events)
	if err != nil {
		s.log.Error(ctx, "marshalling holiday payload", "error", err)
		return events
	}
	now := s.clock.Now().UnixMilli()
	err = s.store.SetAll(map[string]string{
		common.CacheKeyHolidays:  string(payload),
		common.CacheKeyLastFetch: strconv.FormatInt(now, 10),
	})
	if err != nil {
		// The fetched data is still good for this session.
		s.log.Error(ctx, "persisting holiday cache", "error", err)
	} else {
		s.log.Info(ctx, "holiday cache refreshed", "count", len(events))
	}
	return events
}

// cachedOrEmpty serves the last cached payload regardless of age, or an
// empty list if there is none.
func (s *holidayService) cachedOrEmpty(ctx context.Context) []models.Event {
	payload, ok, err := s.store.Get(common.CacheKeyHolidays)
	if err != nil || !ok {
		return []models.Event{}
	}
	events, err := decodeEvents(payload)
	if err != nil {
		s.log.Warn(ctx, "stale holiday cache unparseable", "error", err)
		return []models.Event{}
	}
	return events
}

func decodeEvents(payload string) ([]models.Event, error) {
	var events []models.Event
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
