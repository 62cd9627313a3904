// Package kv provides the persistent string key/value store shared by the
// holiday cache and the custom event store. The two owners use disjoint key
// namespaces, so no coordination between them is required.
package kv

// Store describes the persistence contract. Values are serialized structured
// data (JSON text); the store itself does not interpret them.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// SetAll stores every pair in one durable write. Used where related
	// entries (cache payload and its fetch timestamp) must land together
	// or not at all.
	SetAll(pairs map[string]string) error
}
