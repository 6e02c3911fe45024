package usecase

import (
	"context"

	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/readmodel"
)

// Platform roles minted by the external identity service. Rescue participant
// roles (leader/member) are unrelated to these.
const (
	PlatformRoleAdmin = "admin"
	PlatformRoleStaff = "staff"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type ActivityLogReader interface {
	ListRecent(ctx context.Context, limit int) ([]*readmodel.ActivityEntry, error)
}

type ActivityUseCase interface {
	ListRecentActivity(ctx context.Context, role string, limit int) ([]*readmodel.ActivityEntry, error)
}

type activityUseCaseImpl struct {
	activityLog ActivityLogReader
}

func NewActivityUseCase(activityLog ActivityLogReader) ActivityUseCase {
	return &activityUseCaseImpl{activityLog: activityLog}
}

func (u *activityUseCaseImpl) ListRecentActivity(
	ctx context.Context,
	role string,
	limit int,
) ([]*readmodel.ActivityEntry, error) {
	if role != PlatformRoleAdmin && role != PlatformRoleStaff {
		return nil, ErrActivityAccessDenied
	}

	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	entries, err := u.activityLog.ListRecent(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list activity log")
	}
	return entries, nil
}
