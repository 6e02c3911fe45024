package repository

import (
	"context"

	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// UserRepository reads the externally owned users collection; this service
// only needs recipient details for outbound mail.
type UserRepository struct {
	store store.EntityStore
}

func NewUserRepository(s store.EntityStore) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.User, error) {
	it, err := r.store.Get(ctx, store.CollectionUsers, id)
	if err != nil {
		return nil, err
	}
	return toUser(it), nil
}
