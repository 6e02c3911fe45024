package usecase

import (
	"context"
	"log/slog"
	"time"

	"pawhaven/internal/domain/adoption"
	"pawhaven/internal/domain/pet"
	reqdto "pawhaven/internal/handler/dto/request"
	"pawhaven/internal/infra"
	"pawhaven/internal/notify"
	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AdoptionRepository interface {
	Create(ctx context.Context, in command.NewAdoption) (*readmodel.Adoption, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error)
	FindActiveByPet(ctx context.Context, petID uuid.UUID) ([]*readmodel.Adoption, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.Adoption, error)
	FindByPet(ctx context.Context, petID uuid.UUID) ([]*readmodel.Adoption, error)
	FindExpiredConfirming(ctx context.Context, now time.Time) ([]*readmodel.Adoption, error)
	BeginConfirmation(ctx context.Context, id uuid.UUID, sentAt, expiresAt time.Time) (*readmodel.Adoption, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID, approvedAt time.Time) (*readmodel.Adoption, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, notes *string) (*readmodel.Adoption, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error)
}

type PetRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Pet, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status pet.Status) (*readmodel.Pet, error)
}

type ActivityLog interface {
	Append(ctx context.Context, in command.NewActivityEntry) (*readmodel.ActivityEntry, error)
}

// SweepResult reports the outcome of one expiry sweep. Attempted counts the
// adoptions found past their confirmation deadline; Cancelled counts how many
// were actually driven to the cancelled state.
type SweepResult struct {
	Attempted int
	Cancelled int
}

type AdoptionUseCase interface {
	CreateAdoption(ctx context.Context, req reqdto.CreateAdoptionRequest, userID uuid.UUID) (*readmodel.Adoption, error)
	GetAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error)
	GetUserAdoptions(ctx context.Context, userID uuid.UUID) ([]*readmodel.Adoption, error)
	GetPetAdoptions(ctx context.Context, petID uuid.UUID) ([]*readmodel.Adoption, error)
	SendConfirmation(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error)
	ConfirmAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error)
	CancelAdoption(ctx context.Context, id uuid.UUID, reason *string) (*readmodel.Adoption, error)
	CompleteAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error)
	SweepExpired(ctx context.Context) (SweepResult, error)
}

type adoptionUseCaseImpl struct {
	adoptionRepo AdoptionRepository
	petRepo      PetRepository
	activityLog  ActivityLog
	notifier     notify.Gateway
	clock        clock.Clock
}

func NewAdoptionUseCase(
	adoptionRepo AdoptionRepository,
	petRepo PetRepository,
	activityLog ActivityLog,
	notifier notify.Gateway,
	clock clock.Clock,
) AdoptionUseCase {
	return &adoptionUseCaseImpl{
		adoptionRepo: adoptionRepo,
		petRepo:      petRepo,
		activityLog:  activityLog,
		notifier:     notifier,
		clock:        clock,
	}
}

func (a *adoptionUseCaseImpl) CreateAdoption(
	ctx context.Context,
	req reqdto.CreateAdoptionRequest,
	userID uuid.UUID,
) (*readmodel.Adoption, error) {
	petRM, err := a.findPet(ctx, req.PetID)
	if err != nil {
		return nil, err
	}
	if !pet.Status(petRM.Status).IsAdoptable() {
		return nil, ErrPetUnavailable
	}

	active, err := a.adoptionRepo.FindActiveByPet(ctx, req.PetID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check active adoptions")
	}
	if len(active) > 0 {
		return nil, ErrAdoptionExists
	}

	created, err := a.adoptionRepo.Create(ctx, command.NewAdoption{
		PetID:  req.PetID,
		UserID: userID,
		Notes:  req.GetNotes(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create adoption")
	}

	a.logActivity(ctx, "adoption.created", userID, created.ID, "adoption request opened")
	return created, nil
}

func (a *adoptionUseCaseImpl) GetAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	return a.findAdoption(ctx, id)
}

func (a *adoptionUseCaseImpl) GetUserAdoptions(ctx context.Context, userID uuid.UUID) ([]*readmodel.Adoption, error) {
	adoptions, err := a.adoptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user adoptions")
	}
	return adoptions, nil
}

func (a *adoptionUseCaseImpl) GetPetAdoptions(ctx context.Context, petID uuid.UUID) ([]*readmodel.Adoption, error) {
	adoptions, err := a.adoptionRepo.FindByPet(ctx, petID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find pet adoptions")
	}
	return adoptions, nil
}

// SendConfirmation moves a pending adoption into the confirming state, holds
// the pet, and starts the confirmation window.
func (a *adoptionUseCaseImpl) SendConfirmation(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	current, err := a.findAdoption(ctx, id)
	if err != nil {
		return nil, err
	}
	if adoption.Status(current.Status) != adoption.StatusPending {
		return nil, errs.NewInvalidTransition("adoption", current.Status, adoption.StatusConfirming.String())
	}

	if _, err := a.petRepo.UpdateStatus(ctx, current.PetID, pet.StatusPending); err != nil {
		return nil, errs.Wrap(err, "failed to hold pet")
	}

	now := a.clock.Now()
	updated, err := a.adoptionRepo.BeginConfirmation(ctx, id, now, now.Add(adoption.ConfirmationWindow))
	if err != nil {
		return nil, errs.Wrap(err, "failed to begin confirmation")
	}

	title, message := notify.AdoptionConfirmationRequested(a.petName(ctx, current.PetID))
	a.sendNotification(ctx, updated.UserID, updated.ID, notify.TypeAdoption, title, message)

	a.logActivity(ctx, "adoption.confirmation_sent", updated.UserID, updated.ID, "confirmation requested")
	return updated, nil
}

// ConfirmAdoption completes the confirmation handshake. When the window has
// already lapsed the call performs the cancel transition instead and returns
// the cancelled adoption; the scheduler sweep converges on the same state.
func (a *adoptionUseCaseImpl) ConfirmAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	current, err := a.findAdoption(ctx, id)
	if err != nil {
		return nil, err
	}
	if adoption.Status(current.Status) != adoption.StatusConfirming {
		return nil, errs.NewInvalidTransition("adoption", current.Status, adoption.StatusConfirmed.String())
	}

	if current.ConfirmationExpiresAt != nil && !a.clock.Now().Before(*current.ConfirmationExpiresAt) {
		return a.cancel(ctx, current, true, nil)
	}

	updated, err := a.adoptionRepo.MarkConfirmed(ctx, id, a.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to confirm adoption")
	}

	title, message := notify.AdoptionStatusChanged(a.petName(ctx, updated.PetID), updated.Status)
	a.sendNotification(ctx, updated.UserID, updated.ID, notify.TypeAdoption, title, message)

	a.logActivity(ctx, "adoption.confirmed", updated.UserID, updated.ID, "adoption confirmed")
	return updated, nil
}

func (a *adoptionUseCaseImpl) CancelAdoption(ctx context.Context, id uuid.UUID, reason *string) (*readmodel.Adoption, error) {
	current, err := a.findAdoption(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.cancel(ctx, current, false, reason)
}

func (a *adoptionUseCaseImpl) CompleteAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	current, err := a.findAdoption(ctx, id)
	if err != nil {
		return nil, err
	}
	if adoption.Status(current.Status) != adoption.StatusConfirmed {
		return nil, errs.NewInvalidTransition("adoption", current.Status, adoption.StatusCompleted.String())
	}

	if _, err := a.petRepo.UpdateStatus(ctx, current.PetID, pet.StatusAdopted); err != nil {
		return nil, errs.Wrap(err, "failed to mark pet adopted")
	}

	updated, err := a.adoptionRepo.MarkCompleted(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to complete adoption")
	}

	title, message := notify.AdoptionStatusChanged(a.petName(ctx, updated.PetID), updated.Status)
	a.sendNotification(ctx, updated.UserID, updated.ID, notify.TypeAdoption, title, message)

	a.logActivity(ctx, "adoption.completed", updated.UserID, updated.ID, "adoption completed")
	return updated, nil
}

// SweepExpired cancels every adoption whose confirmation window lapsed before
// now. One failing item is logged and skipped; the sweep continues.
func (a *adoptionUseCaseImpl) SweepExpired(ctx context.Context) (SweepResult, error) {
	expired, err := a.adoptionRepo.FindExpiredConfirming(ctx, a.clock.Now())
	if err != nil {
		return SweepResult{}, errs.Wrap(err, "failed to find expired adoptions")
	}

	result := SweepResult{Attempted: len(expired)}
	for _, item := range expired {
		if _, err := a.cancel(ctx, item, true, nil); err != nil {
			slog.Warn("expiry sweep: failed to cancel adoption",
				"adoption_id", item.ID.String(), "error", err.Error())
			continue
		}
		result.Cancelled++
	}
	return result, nil
}

// cancel drives the shared cancel transition: release the pet, mark the
// adoption cancelled, and notify the adopter. Expiry-driven cancellations
// carry an audit note and a dedicated message.
func (a *adoptionUseCaseImpl) cancel(
	ctx context.Context,
	current *readmodel.Adoption,
	expired bool,
	reason *string,
) (*readmodel.Adoption, error) {
	if !adoption.Status(current.Status).CanCancel() {
		return nil, errs.NewInvalidTransition("adoption", current.Status, adoption.StatusCancelled.String())
	}

	if _, err := a.petRepo.UpdateStatus(ctx, current.PetID, pet.StatusAvailable); err != nil {
		return nil, errs.Wrap(err, "failed to release pet")
	}

	updated, err := a.adoptionRepo.MarkCancelled(ctx, current.ID, cancelNotes(current.Notes, expired, reason))
	if err != nil {
		return nil, errs.Wrap(err, "failed to cancel adoption")
	}

	petName := a.petName(ctx, updated.PetID)
	var title, message string
	if expired {
		title, message = notify.AdoptionExpired(petName)
	} else {
		title, message = notify.AdoptionStatusChanged(petName, updated.Status)
	}
	a.sendNotification(ctx, updated.UserID, updated.ID, notify.TypeAdoption, title, message)

	action := "adoption.cancelled"
	if expired {
		action = "adoption.expired"
	}
	a.logActivity(ctx, action, updated.UserID, updated.ID, "adoption cancelled")
	return updated, nil
}

// cancelNotes merges the cancellation cause into the existing notes.
func cancelNotes(existing *string, expired bool, reason *string) *string {
	var addition string
	switch {
	case expired:
		addition = adoption.ExpiredNote
	case reason != nil && *reason != "":
		addition = "cancelled: " + *reason
	default:
		return existing
	}

	if existing != nil && *existing != "" {
		merged := *existing + "\n" + addition
		return &merged
	}
	return &addition
}

func (a *adoptionUseCaseImpl) findAdoption(ctx context.Context, id uuid.UUID) (*readmodel.Adoption, error) {
	current, err := a.adoptionRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAdoptionNotFound
		}
		return nil, errs.Wrap(err, "failed to find adoption")
	}
	return current, nil
}

func (a *adoptionUseCaseImpl) findPet(ctx context.Context, id uuid.UUID) (*readmodel.Pet, error) {
	petRM, err := a.petRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, errs.Wrap(err, "failed to find pet")
	}
	return petRM, nil
}

// petName resolves the pet's display name for notification copy. The name is
// cosmetic, so a lookup failure degrades to a generic reference.
func (a *adoptionUseCaseImpl) petName(ctx context.Context, petID uuid.UUID) string {
	petRM, err := a.petRepo.FindByID(ctx, petID)
	if err != nil {
		return "the pet"
	}
	return petRM.Name
}

// sendNotification is best-effort: a transition that reached the store stands
// even when the notification could not be delivered.
func (a *adoptionUseCaseImpl) sendNotification(
	ctx context.Context,
	userID, relatedID uuid.UUID,
	typ, title, message string,
) {
	_, err := a.notifier.Notify(ctx, notify.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		RelatedID: relatedID,
	})
	if err != nil {
		slog.Warn("failed to deliver notification",
			"user_id", userID.String(), "related_id", relatedID.String(), "error", err.Error())
	}
}

func (a *adoptionUseCaseImpl) logActivity(
	ctx context.Context,
	action string,
	actorID, targetID uuid.UUID,
	description string,
) {
	_, err := a.activityLog.Append(ctx, command.NewActivityEntry{
		Action:      action,
		ActorID:     actorID,
		TargetType:  "adoption",
		TargetID:    targetID,
		Description: description,
	})
	if err != nil {
		slog.Warn("failed to append activity log", "action", action, "error", err.Error())
	}
}
