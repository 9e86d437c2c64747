// Package store implements the record store: a single local key-value
// namespace holding one JSON-serialized collection per key. Every repository
// shares it. Writes go through Update, an atomic read-modify-write per key,
// which closes the lost-update window a naive read-then-write sequence has.
package store

import (
	"context"
	"errors"
)

// Collection keys. One key per record collection, plus the persisted
// session pointer.
const (
	KeyUsers         = "users"
	KeySectors       = "sectors"
	KeyTasks         = "tasks"
	KeyChecklists    = "checklists"
	KeyCurrentUserID = "current_user_id"
)

// ErrConflict is returned by CAS-based drivers when an update lost the race
// too many times in a row.
var ErrConflict = errors.New("store: concurrent update conflict")

// UpdateFunc receives the current raw value for a key (nil when the key is
// absent) and returns the replacement. Returning an error aborts the update
// without writing.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is a key-value blob store with per-key atomic updates. Get of a
// missing key returns (nil, nil) — absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Delete(ctx context.Context, key string) error
}
