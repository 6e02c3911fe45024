package repository

import (
	"context"

	"pawhaven/internal/domain/pet"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PetRepository struct {
	store store.EntityStore
}

func NewPetRepository(s store.EntityStore) *PetRepository {
	return &PetRepository{store: s}
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Pet, error) {
	it, err := r.store.Get(ctx, store.CollectionPets, id)
	if err != nil {
		return nil, err
	}
	return toPet(it), nil
}

// UpdateStatus writes Pet.status. Only the adoption lifecycle manager may
// call this while an adoption is active.
func (r *PetRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status pet.Status) (*readmodel.Pet, error) {
	it, err := r.store.Update(ctx, store.CollectionPets, id, map[string]any{
		"status": status.String(),
	})
	if err != nil {
		return nil, err
	}
	return toPet(it), nil
}
