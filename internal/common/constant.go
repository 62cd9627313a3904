package common

import "time"

// Persistent key/value store keys. The holiday cache occupies two entries
// (payload and fetch timestamp) that are always written together; custom
// events live under a disjoint key, so no locking is needed between the two
// owners.
const (
	CacheKeyHolidays  = "timeflux_cached_holidays"
	CacheKeyLastFetch = "timeflux_holidays_last_fetch"
	KeyCustomEvents   = "custom_events"
)

// CacheFreshnessWindow is the maximum age of a cached holiday payload before
// it is considered stale. Fixed by design, not configurable per call.
const CacheFreshnessWindow = 24 * time.Hour
