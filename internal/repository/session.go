package repository

import (
	"context"

	"cantina/internal/store"
)

// SessionRepository persists the single selected user id so a restart can
// restore the session. Only the id is stored; the user itself is always
// re-resolved against the users collection.
type SessionRepository interface {
	CurrentUserID(ctx context.Context) (string, error)
	SetCurrentUserID(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type sessionRepo struct{ store store.Store }

func NewSessionRepository(s store.Store) SessionRepository { return &sessionRepo{store: s} }

func (r *sessionRepo) CurrentUserID(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, store.KeyCurrentUserID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *sessionRepo) SetCurrentUserID(ctx context.Context, id string) error {
	return r.store.Update(ctx, store.KeyCurrentUserID, func([]byte) ([]byte, error) {
		return []byte(id), nil
	})
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentUserID)
}
