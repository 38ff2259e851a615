package kvstore

import "context"

// Store is the narrow key-value port behind per-renter session state.
// Values are serialized text; callers own the encoding. A server-backed
// driver can replace the in-memory one without touching call sites.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
