// Package snapshot caches JSON-serializable view data between requests so
// grid pages paint instantly on revisits. A snapshot is advisory: a miss, an
// expired entry, or an undecodable payload all mean "fetch again", never an
// error surfaced to the page.
package snapshot

import "context"

// Store reads and writes cached snapshots. Implementations log failures and
// report them as misses; callers never branch on storage errors.
type Store interface {
	// Get decodes the snapshot under key into dst and reports whether a
	// usable snapshot existed.
	Get(ctx context.Context, key string, dst any) bool
	// Set stores v under key for the store's TTL.
	Set(ctx context.Context, key string, v any)
	// Invalidate removes the snapshot under key.
	Invalidate(ctx context.Context, key string)
}

// Key builds a namespaced snapshot key, e.g. Key("collection", "5002").
func Key(kind, token string) string {
	return kind + ":" + token
}
