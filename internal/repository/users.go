package repository

import (
	"context"

	"cantina/internal/model"
	"cantina/internal/store"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Save(ctx context.Context, u model.User) error
	Delete(ctx context.Context, id string) error
}

type userRepo struct{ store store.Store }

func NewUserRepository(s store.Store) UserRepository { return &userRepo{store: s} }

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	return loadAll[model.User](ctx, r.store, store.KeyUsers)
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmail matches case-sensitively: the login flow treats the stored
// email as an exact lookup key.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Save upserts by id: replace when present, append when absent.
func (r *userRepo) Save(ctx context.Context, u model.User) error {
	return mutateAll(ctx, r.store, store.KeyUsers, func(users []model.User) ([]model.User, error) {
		for i := range users {
			if users[i].ID == u.ID {
				users[i] = u
				return users, nil
			}
		}
		return append(users, u), nil
	})
}

// Delete removes the user with the given id; a missing id is a no-op.
func (r *userRepo) Delete(ctx context.Context, id string) error {
	return mutateAll(ctx, r.store, store.KeyUsers, func(users []model.User) ([]model.User, error) {
		out := users[:0]
		for _, u := range users {
			if u.ID != id {
				out = append(out, u)
			}
		}
		return out, nil
	})
}
