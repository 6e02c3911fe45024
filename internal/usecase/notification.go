package usecase

import (
	"context"
	"time"

	"pawhaven/internal/infra"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*readmodel.Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) (*readmodel.Notification, error)
}

type NotificationUseCase interface {
	GetUserNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*readmodel.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*readmodel.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

type notificationUseCaseImpl struct {
	notificationRepo NotificationRepository
	clock            clock.Clock
}

func NewNotificationUseCase(notificationRepo NotificationRepository, clock clock.Clock) NotificationUseCase {
	return &notificationUseCaseImpl{notificationRepo: notificationRepo, clock: clock}
}

func (n *notificationUseCaseImpl) GetUserNotifications(
	ctx context.Context,
	userID uuid.UUID,
	unreadOnly bool,
) ([]*readmodel.Notification, error) {
	notifications, err := n.notificationRepo.FindByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list notifications")
	}
	return notifications, nil
}

// MarkRead is scoped to the owner: a notification belonging to another user
// is reported as not found rather than leaked.
func (n *notificationUseCaseImpl) MarkRead(ctx context.Context, id, userID uuid.UUID) (*readmodel.Notification, error) {
	current, err := n.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, errs.Wrap(err, "failed to find notification")
	}
	if current.UserID != userID {
		return nil, ErrNotificationNotFound
	}
	if current.IsRead {
		return current, nil
	}

	updated, err := n.notificationRepo.MarkRead(ctx, id, n.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to mark notification read")
	}
	return updated, nil
}

func (n *notificationUseCaseImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	unread, err := n.notificationRepo.FindByUser(ctx, userID, true)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list unread notifications")
	}

	now := n.clock.Now()
	marked := 0
	for _, item := range unread {
		if _, err := n.notificationRepo.MarkRead(ctx, item.ID, now); err != nil {
			return marked, errs.Wrap(err, "failed to mark notification read")
		}
		marked++
	}
	return marked, nil
}
