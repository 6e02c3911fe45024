package repository

import (
	"context"
	"time"

	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	store store.EntityStore
}

func NewNotificationRepository(s store.EntityStore) *NotificationRepository {
	return &NotificationRepository{store: s}
}

func (r *NotificationRepository) Create(ctx context.Context, in command.NewNotification) (*readmodel.Notification, error) {
	it, err := r.store.Create(ctx, store.CollectionNotifications, map[string]any{
		"user_id":    in.UserID,
		"title":      in.Title,
		"message":    in.Message,
		"type":       in.Type,
		"related_id": in.RelatedID,
		"is_read":    false,
	})
	if err != nil {
		return nil, err
	}
	return toNotification(it), nil
}

// FindRecent returns the newest notification for the same
// (user, related entity, type) triple created at or after since.
func (r *NotificationRepository) FindRecent(ctx context.Context, userID, relatedID uuid.UUID, typ string, since time.Time) (*readmodel.Notification, error) {
	items, err := r.store.Find(ctx, store.CollectionNotifications,
		store.Where().
			Eq("user_id", userID).
			Eq("related_id", relatedID).
			Eq("type", typ).
			Since(store.FieldCreatedAt, since).
			SortDesc(store.FieldCreatedAt).
			Limit(1))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return toNotification(items[0]), nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*readmodel.Notification, error) {
	filter := store.Where().Eq("user_id", userID).SortDesc(store.FieldCreatedAt)
	if unreadOnly {
		filter = filter.Eq("is_read", false)
	}

	items, err := r.store.Find(ctx, store.CollectionNotifications, filter)
	if err != nil {
		return nil, err
	}
	return mapItems(items, toNotification), nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Notification, error) {
	it, err := r.store.Get(ctx, store.CollectionNotifications, id)
	if err != nil {
		return nil, err
	}
	return toNotification(it), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (*readmodel.Notification, error) {
	it, err := r.store.Update(ctx, store.CollectionNotifications, id, map[string]any{
		"is_read": true,
		"read_at": readAt,
	})
	if err != nil {
		return nil, err
	}
	return toNotification(it), nil
}
