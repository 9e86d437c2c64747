package repository

import (
	"context"
	"sort"

	"cantina/internal/model"
	"cantina/internal/store"
)

type SectorRepository interface {
	// List returns sectors ascending by display order. Equal orders keep
	// their insertion order.
	List(ctx context.Context) ([]model.Sector, error)
	FindByID(ctx context.Context, id string) (*model.Sector, error)
	Save(ctx context.Context, sec model.Sector) error
	Delete(ctx context.Context, id string) error
}

type sectorRepo struct{ store store.Store }

func NewSectorRepository(s store.Store) SectorRepository { return &sectorRepo{store: s} }

func (r *sectorRepo) List(ctx context.Context) ([]model.Sector, error) {
	sectors, err := loadAll[model.Sector](ctx, r.store, store.KeySectors)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sectors, func(i, j int) bool {
		return sectors[i].DisplayOrder < sectors[j].DisplayOrder
	})
	return sectors, nil
}

func (r *sectorRepo) FindByID(ctx context.Context, id string) (*model.Sector, error) {
	sectors, err := loadAll[model.Sector](ctx, r.store, store.KeySectors)
	if err != nil {
		return nil, err
	}
	for i := range sectors {
		if sectors[i].ID == id {
			return &sectors[i], nil
		}
	}
	return nil, nil
}

func (r *sectorRepo) Save(ctx context.Context, sec model.Sector) error {
	return mutateAll(ctx, r.store, store.KeySectors, func(sectors []model.Sector) ([]model.Sector, error) {
		for i := range sectors {
			if sectors[i].ID == sec.ID {
				sectors[i] = sec
				return sectors, nil
			}
		}
		return append(sectors, sec), nil
	})
}

// Delete removes only the sector itself. Tasks and checklist items that
// reference it are left in place — there is no cascade.
func (r *sectorRepo) Delete(ctx context.Context, id string) error {
	return mutateAll(ctx, r.store, store.KeySectors, func(sectors []model.Sector) ([]model.Sector, error) {
		out := sectors[:0]
		for _, s := range sectors {
			if s.ID != id {
				out = append(out, s)
			}
		}
		return out, nil
	})
}
