package repository

import (
	"context"

	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"
)

type ActivityLogRepository struct {
	store store.EntityStore
}

func NewActivityLogRepository(s store.EntityStore) *ActivityLogRepository {
	return &ActivityLogRepository{store: s}
}

func (r *ActivityLogRepository) Append(ctx context.Context, in command.NewActivityEntry) (*readmodel.ActivityEntry, error) {
	it, err := r.store.Create(ctx, store.CollectionActivityLog, map[string]any{
		"action":      in.Action,
		"actor_id":    in.ActorID,
		"target_type": in.TargetType,
		"target_id":   in.TargetID,
		"description": in.Description,
	})
	if err != nil {
		return nil, err
	}
	return toActivityEntry(it), nil
}

func (r *ActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]*readmodel.ActivityEntry, error) {
	items, err := r.store.Find(ctx, store.CollectionActivityLog,
		store.Where().SortDesc(store.FieldCreatedAt).Limit(limit))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toActivityEntry), nil
}
