// Package repository exposes typed CRUD views over the record store. Every
// operation is a whole-collection read-modify-write executed inside a single
// store Update, so two writers to the same collection can never interleave.
package repository

import (
	"context"
	"encoding/json"

	"cantina/internal/store"
)

// loadAll decodes the collection stored under key. A missing key decodes to
// an empty slice.
func loadAll[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// mutateAll applies fn to the decoded collection and persists the result,
// all under the store's per-key update lock.
func mutateAll[T any](ctx context.Context, s store.Store, key string, fn func([]T) ([]T, error)) error {
	return s.Update(ctx, key, func(current []byte) ([]byte, error) {
		var items []T
		if current != nil {
			if err := json.Unmarshal(current, &items); err != nil {
				return nil, err
			}
		}
		next, err := fn(items)
		if err != nil {
			return nil, err
		}
		return json.Marshal(next)
	})
}
