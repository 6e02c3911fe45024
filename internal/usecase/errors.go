package usecase

import (
	"pawhaven/internal/pkg/errs"
)

var (
	// NotFound
	ErrPetNotFound          = errs.Mark(errs.New("pet not found"), errs.ErrNotFound)
	ErrAdoptionNotFound     = errs.Mark(errs.New("adoption not found"), errs.ErrNotFound)
	ErrRescueNotFound       = errs.Mark(errs.New("rescue not found"), errs.ErrNotFound)
	ErrReportNotFound       = errs.Mark(errs.New("report not found"), errs.ErrNotFound)
	ErrReportLinkNotFound   = errs.Mark(errs.New("rescue report link not found"), errs.ErrNotFound)
	ErrParticipantNotFound  = errs.Mark(errs.New("user is not a participant in this rescue"), errs.ErrNotFound)
	ErrNotificationNotFound = errs.Mark(errs.New("notification not found"), errs.ErrNotFound)

	// Conflict: a uniqueness or availability precondition failed
	ErrPetUnavailable     = errs.Mark(errs.New("pet is not available for adoption"), errs.ErrConflict)
	ErrAdoptionExists     = errs.Mark(errs.New("pet already has an active adoption request"), errs.ErrConflict)
	ErrReportNotPending   = errs.Mark(errs.New("report is not pending"), errs.ErrConflict)
	ErrAlreadyParticipant = errs.Mark(errs.New("user already participates in this rescue"), errs.ErrConflict)

	// Forbidden
	ErrActivityAccessDenied = errs.New("activity log access denied")

	// Validation
	ErrInvalidRequiredParticipants = errs.New("required participants must be at least 1")
	ErrInvalidReportProgress       = errs.New("invalid report progress status")
	ErrInvalidRole                 = errs.New("invalid participant role")

	// Operation errors
	ErrStoreOperationFailed = errs.New("store operation failed")
)
