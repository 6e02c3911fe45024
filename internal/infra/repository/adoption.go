package repository

import (
	"context"
	"time"

	"pawhaven/internal/domain/adoption"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AdoptionRepository struct {
	store store.EntityStore
}

func NewAdoptionRepository(s store.EntityStore) *AdoptionRepository {
	return &AdoptionRepository{store: s}
}

func (r *AdoptionRepository) Create(ctx context.Context, in command.NewAdoption) (*readmodel.Adoption, error) {
	data := map[string]any{
		"pet_id":  in.PetID,
		"user_id": in.UserID,
		"status":  adoption.StatusPending,
	}
	if in.Notes != nil {
		data["notes"] = *in.Notes
	}

	it, err := r.store.Create(ctx, store.CollectionAdoptions, data)
	if err != nil {
		return nil, err
	}
	return toAdoption(it), nil
}

func (r *AdoptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	it, err := r.store.Get(ctx, store.CollectionAdoptions, id)
	if err != nil {
		return nil, err
	}
	return toAdoption(it), nil
}

// FindActiveByPet returns adoptions in a state that still holds the pet.
func (r *AdoptionRepository) FindActiveByPet(ctx context.Context, petID uuid.UUID) ([]*readmodel.Adoption, error) {
	active := adoption.ActiveStatuses()
	statuses := make([]any, len(active))
	for i, s := range active {
		statuses[i] = s
	}

	items, err := r.store.Find(ctx, store.CollectionAdoptions,
		store.Where().Eq("pet_id", petID).In("status", statuses...))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toAdoption), nil
}

func (r *AdoptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.Adoption, error) {
	items, err := r.store.Find(ctx, store.CollectionAdoptions,
		store.Where().Eq("user_id", userID))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toAdoption), nil
}

func (r *AdoptionRepository) FindByPet(ctx context.Context, petID uuid.UUID) ([]*readmodel.Adoption, error) {
	items, err := r.store.Find(ctx, store.CollectionAdoptions,
		store.Where().Eq("pet_id", petID))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toAdoption), nil
}

// FindExpiredConfirming returns adoptions stuck in confirming whose window
// lapsed before now.
func (r *AdoptionRepository) FindExpiredConfirming(ctx context.Context, now time.Time) ([]*readmodel.Adoption, error) {
	items, err := r.store.Find(ctx, store.CollectionAdoptions,
		store.Where().
			Eq("status", adoption.StatusConfirming).
			Before("confirmation_expires_at", now))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toAdoption), nil
}

func (r *AdoptionRepository) BeginConfirmation(ctx context.Context, id uuid.UUID, sentAt, expiresAt time.Time) (*readmodel.Adoption, error) {
	it, err := r.store.Update(ctx, store.CollectionAdoptions, id, map[string]any{
		"status":                  adoption.StatusConfirming,
		"confirmation_sent_at":    sentAt,
		"confirmation_expires_at": expiresAt,
	})
	if err != nil {
		return nil, err
	}
	return toAdoption(it), nil
}

func (r *AdoptionRepository) MarkConfirmed(ctx context.Context, id uuid.UUID, approvedAt time.Time) (*readmodel.Adoption, error) {
	it, err := r.store.Update(ctx, store.CollectionAdoptions, id, map[string]any{
		"status":        adoption.StatusConfirmed,
		"approval_date": approvedAt,
	})
	if err != nil {
		return nil, err
	}
	return toAdoption(it), nil
}

func (r *AdoptionRepository) MarkCancelled(ctx context.Context, id uuid.UUID, notes *string) (*readmodel.Adoption, error) {
	patch := map[string]any{
		"status": adoption.StatusCancelled,
	}
	if notes != nil {
		patch["notes"] = *notes
	}

	it, err := r.store.Update(ctx, store.CollectionAdoptions, id, patch)
	if err != nil {
		return nil, err
	}
	return toAdoption(it), nil
}

func (r *AdoptionRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	it, err := r.store.Update(ctx, store.CollectionAdoptions, id, map[string]any{
		"status": adoption.StatusCompleted,
	})
	if err != nil {
		return nil, err
	}
	return toAdoption(it), nil
}

func mapItems[T any](items []store.Item, convert func(store.Item) *T) []*T {
	out := make([]*T, len(items))
	for i, it := range items {
		out[i] = convert(it)
	}
	return out
}
