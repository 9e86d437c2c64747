package repository

import (
	"context"
	"time"

	"cantina/internal/model"
	"cantina/internal/store"
)

type ChecklistRepository interface {
	List(ctx context.Context) ([]model.ChecklistItem, error)
	ListBySectorDate(ctx context.Context, sectorID string, day time.Time) ([]model.ChecklistItem, error)
	FindByID(ctx context.Context, id string) (*model.ChecklistItem, error)
	Save(ctx context.Context, item model.ChecklistItem) error

	// InsertDay appends items for (sectorID, day) only if the day holds no
	// items for that sector yet. When the day is already materialized it
	// returns the existing items untouched and created=false — inserting and
	// the frozen-day check happen under the same collection lock, so two
	// racing materializations cannot both insert.
	InsertDay(ctx context.Context, sectorID string, day time.Time, items []model.ChecklistItem) (existing []model.ChecklistItem, created bool, err error)
}

type checklistRepo struct{ store store.Store }

func NewChecklistRepository(s store.Store) ChecklistRepository { return &checklistRepo{store: s} }

func (r *checklistRepo) List(ctx context.Context) ([]model.ChecklistItem, error) {
	return loadAll[model.ChecklistItem](ctx, r.store, store.KeyChecklists)
}

// Day identity is exact instant equality against the day-start timestamp,
// not the calendar string — two day-starts from different locations are
// different days even when they format the same.
func sameDay(item model.ChecklistItem, day time.Time) bool {
	return item.Date.Equal(day)
}

func (r *checklistRepo) ListBySectorDate(ctx context.Context, sectorID string, day time.Time) ([]model.ChecklistItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ChecklistItem, 0, len(all))
	for _, it := range all {
		if it.SectorID == sectorID && sameDay(it, day) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *checklistRepo) FindByID(ctx context.Context, id string) (*model.ChecklistItem, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *checklistRepo) Save(ctx context.Context, item model.ChecklistItem) error {
	return mutateAll(ctx, r.store, store.KeyChecklists, func(items []model.ChecklistItem) ([]model.ChecklistItem, error) {
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item
				return items, nil
			}
		}
		return append(items, item), nil
	})
}

func (r *checklistRepo) InsertDay(ctx context.Context, sectorID string, day time.Time, newItems []model.ChecklistItem) ([]model.ChecklistItem, bool, error) {
	var existing []model.ChecklistItem
	created := false
	err := mutateAll(ctx, r.store, store.KeyChecklists, func(items []model.ChecklistItem) ([]model.ChecklistItem, error) {
		// CAS-backed stores re-invoke this closure on a version miss, so every
		// per-attempt result must be recomputed from scratch: an attempt that
		// decided to insert and lost the race must not leave created set.
		existing = existing[:0]
		created = false
		for _, it := range items {
			if it.SectorID == sectorID && sameDay(it, day) {
				existing = append(existing, it)
			}
		}
		if len(existing) > 0 {
			// Day already materialized — frozen, even if templates changed.
			return items, nil
		}
		created = true
		return append(items, newItems...), nil
	})
	if err != nil {
		return nil, false, err
	}
	return existing, created, nil
}
