package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/client/repositories/kv"
	"github.com/dmitrijs2005/timeflux/internal/common"
	"github.com/dmitrijs2005/timeflux/internal/logging"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

type fakeProvider struct {
	mu     sync.Mutex
	events []models.Event
	err    error
	calls  int

	// optional gates for concurrency tests
	entered chan struct{}
	release chan struct{}
}

func (f *fakeProvider) Fetch(ctx context.Context) ([]models.Event, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.events, f.err
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

var testHolidays = []models.Event{
	{ID: "holiday-0-1", Title: "中秋节", Date: "2025-10-06T00:00:00", Kind: models.KindHoliday, CreatedAt: 1},
	{ID: "holiday-1-1", Title: "国庆节", Date: "2025-10-01T00:00:00", Kind: models.KindHoliday, CreatedAt: 1},
}

func seedCache(t *testing.T, store kv.Store, events []models.Event, fetchedAt time.Time) {
	t.Helper()
	payload, err := json.Marshal(events)
	require.NoError(t, err)
	require.NoError(t, store.SetAll(map[string]string{
		common.CacheKeyHolidays:  string(payload),
		common.CacheKeyLastFetch: strconv.FormatInt(fetchedAt.UnixMilli(), 10),
	}))
}

func TestGetHolidays_FreshCacheSkipsProvider(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	p := &fakeProvider{events: nil, err: errors.New("must not be called")}

	seedCache(t, store, testHolidays, now.Add(-common.CacheFreshnessWindow+time.Minute))

	s := NewHolidayService(p, store, timex.NewManualClock(now), logging.NewDiscard())
	got := s.GetHolidays(context.Background(), false)

	assert.Equal(t, testHolidays, got)
	assert.Equal(t, 0, p.callCount())
}

func TestGetHolidays_StaleCacheInvokesProviderOnce(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	fetched := []models.Event{{ID: "holiday-0-2", Title: "元旦", Kind: models.KindHoliday}}
	p := &fakeProvider{events: fetched}

	seedCache(t, store, testHolidays, now.Add(-common.CacheFreshnessWindow))

	s := NewHolidayService(p, store, timex.NewManualClock(now), logging.NewDiscard())
	got := s.GetHolidays(context.Background(), false)

	assert.Equal(t, fetched, got)
	assert.Equal(t, 1, p.callCount())

	// Both cache entries were replaced together.
	ts, ok, err := store.Get(common.CacheKeyLastFetch)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(now.UnixMilli(), 10), ts)

	payload, ok, err := store.Get(common.CacheKeyHolidays)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []models.Event
	require.NoError(t, json.Unmarshal([]byte(payload), &persisted))
	assert.Equal(t, fetched, persisted)
}

func TestGetHolidays_MissingCacheInvokesProvider(t *testing.T) {
	p := &fakeProvider{events: testHolidays}
	s := NewHolidayService(p, kv.NewMemoryStore(), timex.NewManualClock(time.Now()), logging.NewDiscard())

	got := s.GetHolidays(context.Background(), false)

	assert.Equal(t, testHolidays, got)
	assert.Equal(t, 1, p.callCount())
}

func TestGetHolidays_ForceAlwaysInvokesProvider(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	fetched := []models.Event{{ID: "holiday-0-3", Title: "春节", Kind: models.KindHoliday}}
	p := &fakeProvider{events: fetched}

	// Cache is perfectly fresh, force must bypass it anyway.
	seedCache(t, store, testHolidays, now)

	s := NewHolidayService(p, store, timex.NewManualClock(now), logging.NewDiscard())
	got := s.GetHolidays(context.Background(), true)

	assert.Equal(t, fetched, got)
	assert.Equal(t, 1, p.callCount())
}

func TestGetHolidays_CorruptPayloadIsCacheMiss(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	require.NoError(t, store.SetAll(map[string]string{
		common.CacheKeyHolidays:  "{definitely not a list",
		common.CacheKeyLastFetch: strconv.FormatInt(now.UnixMilli(), 10),
	}))
	p := &fakeProvider{events: testHolidays}

	s := NewHolidayService(p, store, timex.NewManualClock(now), logging.NewDiscard())
	got := s.GetHolidays(context.Background(), false)

	assert.Equal(t, testHolidays, got)
	assert.Equal(t, 1, p.callCount())
}

func TestGetHolidays_CorruptTimestampIsCacheMiss(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	payload, err := json.Marshal(testHolidays)
	require.NoError(t, err)
	require.NoError(t, store.SetAll(map[string]string{
		common.CacheKeyHolidays:  string(payload),
		common.CacheKeyLastFetch: "yesterday-ish",
	}))
	p := &fakeProvider{events: testHolidays}

	s := NewHolidayService(p, store, timex.NewManualClock(now), logging.NewDiscard())
	s.GetHolidays(context.Background(), false)

	assert.Equal(t, 1, p.callCount())
}

func TestGetHolidays_ProviderFailureServesPriorCache(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	p := &fakeProvider{err: common.ErrProviderUnavailable}

	staleFetch := now.Add(-48 * time.Hour)
	seedCache(t, store, testHolidays, staleFetch)

	s := NewHolidayService(p, store, timex.NewManualClock(now), logging.NewDiscard())
	got := s.GetHolidays(context.Background(), false)

	assert.Equal(t, testHolidays, got)
	assert.Equal(t, 1, p.callCount())

	// The failed refresh must leave the prior cache untouched.
	ts, ok, err := store.Get(common.CacheKeyLastFetch)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(staleFetch.UnixMilli(), 10), ts)
}

func TestGetHolidays_ProviderFailureWithNoCacheReturnsEmpty(t *testing.T) {
	p := &fakeProvider{err: common.ErrProviderUnavailable}
	s := NewHolidayService(p, kv.NewMemoryStore(), timex.NewManualClock(time.Now()), logging.NewDiscard())

	got := s.GetHolidays(context.Background(), false)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetHolidays_ConcurrentRefreshesShareOneFetch(t *testing.T) {
	p := &fakeProvider{
		events:  testHolidays,
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	s := NewHolidayService(p, kv.NewMemoryStore(), timex.NewManualClock(time.Now()), logging.NewDiscard())

	results := make(chan []models.Event, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- s.GetHolidays(context.Background(), true)
		}()
	}

	// Wait for the first caller to reach the provider, give the second
	// caller time to join the in-flight refresh, then let it finish.
	<-p.entered
	time.Sleep(50 * time.Millisecond)
	close(p.release)

	first := <-results
	second := <-results
	assert.Equal(t, testHolidays, first)
	assert.Equal(t, testHolidays, second)
	assert.Equal(t, 1, p.callCount())
}
