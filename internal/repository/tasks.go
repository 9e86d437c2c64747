package repository

import (
	"context"
	"sort"

	"cantina/internal/model"
	"cantina/internal/store"
)

type TaskRepository interface {
	List(ctx context.Context) ([]model.Task, error)
	ListBySector(ctx context.Context, sectorID string) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Save(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
}

type taskRepo struct{ store store.Store }

func NewTaskRepository(s store.Store) TaskRepository { return &taskRepo{store: s} }

func (r *taskRepo) List(ctx context.Context) ([]model.Task, error) {
	return loadAll[model.Task](ctx, r.store, store.KeyTasks)
}

func (r *taskRepo) ListBySector(ctx context.Context, sectorID string) ([]model.Task, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.SectorID == sectorID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out, nil
}

func (r *taskRepo) FindByID(ctx context.Context, id string) (*model.Task, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, nil
}

func (r *taskRepo) Save(ctx context.Context, t model.Task) error {
	return mutateAll(ctx, r.store, store.KeyTasks, func(tasks []model.Task) ([]model.Task, error) {
		for i := range tasks {
			if tasks[i].ID == t.ID {
				tasks[i] = t
				return tasks, nil
			}
		}
		return append(tasks, t), nil
	})
}

func (r *taskRepo) Delete(ctx context.Context, id string) error {
	return mutateAll(ctx, r.store, store.KeyTasks, func(tasks []model.Task) ([]model.Task, error) {
		out := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				out = append(out, t)
			}
		}
		return out, nil
	})
}
