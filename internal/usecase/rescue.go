package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"pawhaven/internal/domain/report"
	"pawhaven/internal/domain/rescue"
	reqdto "pawhaven/internal/handler/dto/request"
	"pawhaven/internal/infra"
	"pawhaven/internal/notify"
	"pawhaven/internal/pkg/errs"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RescueRepository interface {
	Create(ctx context.Context, in command.NewRescue) (*readmodel.Rescue, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error)
	List(ctx context.Context) ([]*readmodel.Rescue, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*readmodel.Rescue, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status rescue.Status) (*readmodel.Rescue, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddParticipant(ctx context.Context, rescueID, userID uuid.UUID, role rescue.Role) (*readmodel.RescueParticipant, error)
	FindParticipants(ctx context.Context, rescueID uuid.UUID) ([]*readmodel.RescueParticipant, error)
	FindParticipantByUser(ctx context.Context, rescueID, userID uuid.UUID) (*readmodel.RescueParticipant, error)
	RemoveParticipant(ctx context.Context, participantID uuid.UUID) error

	AddReportLink(ctx context.Context, rescueID, reportID uuid.UUID, status rescue.LinkStatus) (*readmodel.RescueReportLink, error)
	FindReportLinks(ctx context.Context, rescueID uuid.UUID) ([]*readmodel.RescueReportLink, error)
	UpdateReportLink(ctx context.Context, linkID uuid.UUID, status rescue.LinkStatus, note *string) (*readmodel.RescueReportLink, error)
	RemoveReportLink(ctx context.Context, linkID uuid.UUID) error
}

type ReportRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status report.Status) (*readmodel.Report, error)
}

type RescueUseCase interface {
	CreateRescue(ctx context.Context, req reqdto.CreateRescueRequest) (*readmodel.Rescue, error)
	GetRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error)
	ListRescues(ctx context.Context) ([]*readmodel.Rescue, error)
	GetUserRescues(ctx context.Context, userID uuid.UUID) ([]*readmodel.Rescue, error)

	AddParticipant(ctx context.Context, rescueID uuid.UUID, req reqdto.AddParticipantRequest) (*readmodel.RescueParticipant, error)
	RemoveParticipant(ctx context.Context, rescueID, userID uuid.UUID) error

	AddReport(ctx context.Context, rescueID uuid.UUID, req reqdto.AddReportRequest) (*readmodel.RescueReportLink, error)
	RemoveReport(ctx context.Context, rescueID, reportID uuid.UUID) error
	UpdateReportProgress(ctx context.Context, rescueID, reportID uuid.UUID, req reqdto.UpdateReportProgressRequest) (*readmodel.RescueReportLink, error)

	StartRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error)
	CompleteRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error)
	CancelRescue(ctx context.Context, id uuid.UUID, req reqdto.CancelRescueRequest) (*readmodel.Rescue, error)

	ClaimReport(ctx context.Context, reportID, userID uuid.UUID) (*readmodel.Rescue, error)
}

type rescueUseCaseImpl struct {
	rescueRepo  RescueRepository
	reportRepo  ReportRepository
	activityLog ActivityLog
	notifier    notify.Gateway
}

func NewRescueUseCase(
	rescueRepo RescueRepository,
	reportRepo ReportRepository,
	activityLog ActivityLog,
	notifier notify.Gateway,
) RescueUseCase {
	return &rescueUseCaseImpl{
		rescueRepo:  rescueRepo,
		reportRepo:  reportRepo,
		activityLog: activityLog,
		notifier:    notifier,
	}
}

func (r *rescueUseCaseImpl) CreateRescue(ctx context.Context, req reqdto.CreateRescueRequest) (*readmodel.Rescue, error) {
	if req.RequiredParticipants < rescue.MinRequiredParticipants {
		return nil, ErrInvalidRequiredParticipants
	}

	created, err := r.rescueRepo.Create(ctx, command.NewRescue{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		RequiredParticipants: req.RequiredParticipants,
		Status:               rescue.StatusPlanned,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create rescue")
	}
	return created, nil
}

func (r *rescueUseCaseImpl) GetRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error) {
	return r.findRescue(ctx, id)
}

func (r *rescueUseCaseImpl) ListRescues(ctx context.Context) ([]*readmodel.Rescue, error) {
	rescues, err := r.rescueRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list rescues")
	}
	return rescues, nil
}

func (r *rescueUseCaseImpl) GetUserRescues(ctx context.Context, userID uuid.UUID) ([]*readmodel.Rescue, error) {
	rescues, err := r.rescueRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user rescues")
	}
	return rescues, nil
}

// AddParticipant joins a user to the campaign. Joining an in-progress run is
// allowed; the participant count may never exceed required_participants.
func (r *rescueUseCaseImpl) AddParticipant(
	ctx context.Context,
	rescueID uuid.UUID,
	req reqdto.AddParticipantRequest,
) (*readmodel.RescueParticipant, error) {
	current, err := r.findRescue(ctx, rescueID)
	if err != nil {
		return nil, err
	}
	if !rescue.Status(current.Status).AcceptsParticipants() {
		return nil, errs.NewInvalidTransitionReason("rescue", current.Status, current.Status,
			"campaign is closed to new participants")
	}

	role := rescue.Role(req.Role)
	if req.Role == "" {
		role = rescue.RoleMember
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	existing, err := r.rescueRepo.FindParticipantByUser(ctx, rescueID, req.UserID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check participant")
	}
	if existing != nil {
		return nil, ErrAlreadyParticipant
	}

	if len(current.Participants) >= current.RequiredParticipants {
		return nil, errs.NewCapacityExceeded(current.RequiredParticipants)
	}

	participant, err := r.rescueRepo.AddParticipant(ctx, rescueID, req.UserID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to add participant")
	}

	r.logActivity(ctx, "rescue.participant_added", req.UserID, rescueID, "participant joined")
	return participant, nil
}

func (r *rescueUseCaseImpl) RemoveParticipant(ctx context.Context, rescueID, userID uuid.UUID) error {
	if _, err := r.findRescue(ctx, rescueID); err != nil {
		return err
	}

	participant, err := r.rescueRepo.FindParticipantByUser(ctx, rescueID, userID)
	if err != nil {
		return errs.Wrap(err, "failed to find participant")
	}
	if participant == nil {
		return ErrParticipantNotFound
	}

	if err := r.rescueRepo.RemoveParticipant(ctx, participant.ID); err != nil {
		return errs.Wrap(err, "failed to remove participant")
	}

	r.logActivity(ctx, "rescue.participant_removed", userID, rescueID, "participant left")
	return nil
}

// AddReport attaches a pending report to a planned campaign and takes it out
// of the open pool.
func (r *rescueUseCaseImpl) AddReport(
	ctx context.Context,
	rescueID uuid.UUID,
	req reqdto.AddReportRequest,
) (*readmodel.RescueReportLink, error) {
	current, err := r.findRescue(ctx, rescueID)
	if err != nil {
		return nil, err
	}
	if rescue.Status(current.Status) != rescue.StatusPlanned {
		return nil, errs.NewInvalidTransitionReason("rescue", current.Status, rescue.StatusPlanned.String(),
			"reports can only be attached to a planned campaign")
	}

	reportRM, err := r.findReport(ctx, req.ReportID)
	if err != nil {
		return nil, err
	}
	if !report.Status(reportRM.Status).IsClaimable() {
		return nil, ErrReportNotPending
	}

	link, err := r.rescueRepo.AddReportLink(ctx, rescueID, req.ReportID, rescue.LinkInProgress)
	if err != nil {
		return nil, errs.Wrap(err, "failed to link report")
	}

	if _, err := r.reportRepo.UpdateStatus(ctx, req.ReportID, report.StatusAssigned); err != nil {
		// Undo the link so the report stays claimable.
		if removeErr := r.rescueRepo.RemoveReportLink(ctx, link.ID); removeErr != nil {
			slog.Error("failed to undo report link",
				"link_id", link.ID.String(), "error", removeErr.Error())
		}
		return nil, errs.Wrap(err, "failed to assign report")
	}

	r.logActivity(ctx, "rescue.report_added", uuid.Nil, rescueID, "report attached to campaign")
	return link, nil
}

// RemoveReport detaches a report from the campaign and returns it to the
// open pool.
func (r *rescueUseCaseImpl) RemoveReport(ctx context.Context, rescueID, reportID uuid.UUID) error {
	current, err := r.findRescue(ctx, rescueID)
	if err != nil {
		return err
	}
	if rescue.Status(current.Status) != rescue.StatusPlanned {
		return errs.NewInvalidTransitionReason("rescue", current.Status, rescue.StatusPlanned.String(),
			"reports can only be detached while planned")
	}

	link := findLinkByReport(current.Reports, reportID)
	if link == nil {
		return ErrReportLinkNotFound
	}

	if err := r.rescueRepo.RemoveReportLink(ctx, link.ID); err != nil {
		return errs.Wrap(err, "failed to unlink report")
	}
	if _, err := r.reportRepo.UpdateStatus(ctx, reportID, report.StatusPending); err != nil {
		return errs.Wrap(err, "failed to return report to pool")
	}

	r.logActivity(ctx, "rescue.report_removed", uuid.Nil, rescueID, "report detached from campaign")
	return nil
}

func (r *rescueUseCaseImpl) UpdateReportProgress(
	ctx context.Context,
	rescueID, reportID uuid.UUID,
	req reqdto.UpdateReportProgressRequest,
) (*readmodel.RescueReportLink, error) {
	current, err := r.findRescue(ctx, rescueID)
	if err != nil {
		return nil, err
	}
	if rescue.Status(current.Status) != rescue.StatusInProgress {
		return nil, errs.NewInvalidTransitionReason("rescue", current.Status, rescue.StatusInProgress.String(),
			"report progress can only change while the campaign runs")
	}

	status := rescue.LinkStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidReportProgress
	}

	link := findLinkByReport(current.Reports, reportID)
	if link == nil {
		return nil, ErrReportLinkNotFound
	}

	updated, err := r.rescueRepo.UpdateReportLink(ctx, link.ID, status, req.Note)
	if err != nil {
		return nil, errs.Wrap(err, "failed to update report progress")
	}
	return updated, nil
}

// StartRescue moves a planned campaign into execution. It needs at least one
// participant and one linked report to have anything to execute.
func (r *rescueUseCaseImpl) StartRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error) {
	current, err := r.findRescue(ctx, id)
	if err != nil {
		return nil, err
	}
	if rescue.Status(current.Status) != rescue.StatusPlanned {
		return nil, errs.NewInvalidTransition("rescue", current.Status, rescue.StatusInProgress.String())
	}
	if len(current.Participants) == 0 {
		return nil, errs.NewInvalidTransitionReason("rescue", current.Status, rescue.StatusInProgress.String(),
			"campaign has no participants")
	}
	if len(current.Reports) == 0 {
		return nil, errs.NewInvalidTransitionReason("rescue", current.Status, rescue.StatusInProgress.String(),
			"campaign has no linked reports")
	}

	updated, err := r.rescueRepo.UpdateStatus(ctx, id, rescue.StatusInProgress)
	if err != nil {
		return nil, errs.Wrap(err, "failed to start rescue")
	}

	title, message := notify.RescueStatusChanged(current.Title, updated.Status)
	for _, p := range current.Participants {
		r.sendNotification(ctx, p.UserID, id, notify.TypeRescue, title, message)
	}

	r.logActivity(ctx, "rescue.started", uuid.Nil, id, "campaign started")
	return updated, nil
}

// CompleteRescue closes an in-progress campaign once every linked report has
// been driven to success or cancelled. Successful reports are resolved;
// cancelled ones return to the open pool.
func (r *rescueUseCaseImpl) CompleteRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error) {
	current, err := r.findRescue(ctx, id)
	if err != nil {
		return nil, err
	}
	if rescue.Status(current.Status) != rescue.StatusInProgress {
		return nil, errs.NewInvalidTransition("rescue", current.Status, rescue.StatusCompleted.String())
	}

	pending := 0
	for _, link := range current.Reports {
		if rescue.LinkStatus(link.Status) == rescue.LinkInProgress {
			pending++
		}
	}
	if pending > 0 {
		return nil, errs.NewInvalidTransitionReason("rescue", current.Status, rescue.StatusCompleted.String(),
			fmt.Sprintf("%d report(s) still in progress", pending))
	}

	for _, link := range current.Reports {
		switch rescue.LinkStatus(link.Status) {
		case rescue.LinkSuccess:
			if err := r.resolveReport(ctx, link.ReportID); err != nil {
				return nil, err
			}
		case rescue.LinkCancelled:
			if err := r.returnReportToPool(ctx, link.ReportID); err != nil {
				return nil, err
			}
		}
	}

	updated, err := r.rescueRepo.UpdateStatus(ctx, id, rescue.StatusCompleted)
	if err != nil {
		return nil, errs.Wrap(err, "failed to complete rescue")
	}

	title, message := notify.RescueStatusChanged(current.Title, updated.Status)
	for _, p := range current.Participants {
		r.sendNotification(ctx, p.UserID, id, notify.TypeRescue, title, message)
	}

	r.logActivity(ctx, "rescue.completed", uuid.Nil, id, "campaign completed")
	return updated, nil
}

// CancelRescue aborts a planned or running campaign. Every linked report
// goes back to the pool and both reporters and participants hear about it.
func (r *rescueUseCaseImpl) CancelRescue(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.CancelRescueRequest,
) (*readmodel.Rescue, error) {
	current, err := r.findRescue(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rescue.Status(current.Status).CanCancel() {
		return nil, errs.NewInvalidTransition("rescue", current.Status, rescue.StatusCancelled.String())
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	for _, link := range current.Reports {
		if _, err := r.rescueRepo.UpdateReportLink(ctx, link.ID, rescue.LinkCancelled, req.Reason); err != nil {
			return nil, errs.Wrap(err, "failed to cancel report link")
		}
		if _, err := r.reportRepo.UpdateStatus(ctx, link.ReportID, report.StatusPending); err != nil {
			return nil, errs.Wrap(err, "failed to return report to pool")
		}
	}

	updated, err := r.rescueRepo.UpdateStatus(ctx, id, rescue.StatusCancelled)
	if err != nil {
		return nil, errs.Wrap(err, "failed to cancel rescue")
	}

	title, message := notify.RescueCancelled(current.Title, reason)
	for _, p := range current.Participants {
		r.sendNotification(ctx, p.UserID, id, notify.TypeRescue, title, message)
	}
	for _, link := range current.Reports {
		if reportRM, err := r.reportRepo.FindByID(ctx, link.ReportID); err == nil {
			r.sendNotification(ctx, reportRM.ReporterID, link.ReportID, notify.TypeReport, title, message)
		}
	}

	r.logActivity(ctx, "rescue.cancelled", uuid.Nil, id, "campaign cancelled")
	return updated, nil
}

// ClaimReport turns a standalone pending report into a one-person campaign
// that is already running: the claimer leads it and the report is assigned.
func (r *rescueUseCaseImpl) ClaimReport(ctx context.Context, reportID, userID uuid.UUID) (*readmodel.Rescue, error) {
	reportRM, err := r.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !report.Status(reportRM.Status).IsClaimable() {
		return nil, ErrReportNotPending
	}

	location := reportRM.Location
	created, err := r.rescueRepo.Create(ctx, command.NewRescue{
		Title:                "Rescue: " + reportRM.Title,
		Location:             &location,
		RequiredParticipants: rescue.MinRequiredParticipants,
		Status:               rescue.StatusInProgress,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create claim campaign")
	}

	if _, err := r.rescueRepo.AddParticipant(ctx, created.ID, userID, rescue.RoleLeader); err != nil {
		r.undoClaim(ctx, created.ID, uuid.Nil)
		return nil, errs.Wrap(err, "failed to add claim leader")
	}
	link, err := r.rescueRepo.AddReportLink(ctx, created.ID, reportID, rescue.LinkInProgress)
	if err != nil {
		r.undoClaim(ctx, created.ID, uuid.Nil)
		return nil, errs.Wrap(err, "failed to link claimed report")
	}
	if _, err := r.reportRepo.UpdateStatus(ctx, reportID, report.StatusAssigned); err != nil {
		r.undoClaim(ctx, created.ID, link.ID)
		return nil, errs.Wrap(err, "failed to assign claimed report")
	}

	title, message := notify.RescueAssignment(reportRM.Location)
	r.sendNotification(ctx, userID, created.ID, notify.TypeRescue, title, message)

	r.logActivity(ctx, "rescue.claimed", userID, created.ID, "report claimed into campaign")
	return r.findRescue(ctx, created.ID)
}

// undoClaim compensates a partially applied claim so the report stays
// claimable. Failures here only get logged; the claim already failed.
func (r *rescueUseCaseImpl) undoClaim(ctx context.Context, rescueID, linkID uuid.UUID) {
	if linkID != uuid.Nil {
		if err := r.rescueRepo.RemoveReportLink(ctx, linkID); err != nil {
			slog.Error("failed to undo claim link", "link_id", linkID.String(), "error", err.Error())
		}
	}
	participants, err := r.rescueRepo.FindParticipants(ctx, rescueID)
	if err == nil {
		for _, p := range participants {
			if err := r.rescueRepo.RemoveParticipant(ctx, p.ID); err != nil {
				slog.Error("failed to undo claim participant", "participant_id", p.ID.String(), "error", err.Error())
			}
		}
	}
	if err := r.rescueRepo.Delete(ctx, rescueID); err != nil {
		slog.Error("failed to undo claim campaign", "rescue_id", rescueID.String(), "error", err.Error())
	}
}

func (r *rescueUseCaseImpl) resolveReport(ctx context.Context, reportID uuid.UUID) error {
	reportRM, err := r.reportRepo.UpdateStatus(ctx, reportID, report.StatusResolved)
	if err != nil {
		return errs.Wrap(err, "failed to resolve report")
	}

	title, message := notify.ReportResolved(reportRM.Title)
	r.sendNotification(ctx, reportRM.ReporterID, reportID, notify.TypeReport, title, message)
	return nil
}

func (r *rescueUseCaseImpl) returnReportToPool(ctx context.Context, reportID uuid.UUID) error {
	reportRM, err := r.reportRepo.UpdateStatus(ctx, reportID, report.StatusPending)
	if err != nil {
		return errs.Wrap(err, "failed to return report to pool")
	}

	title, message := notify.ReportReturnedToPool(reportRM.Title)
	r.sendNotification(ctx, reportRM.ReporterID, reportID, notify.TypeReport, title, message)
	return nil
}

func (r *rescueUseCaseImpl) findRescue(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error) {
	current, err := r.rescueRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRescueNotFound
		}
		return nil, errs.Wrap(err, "failed to find rescue")
	}
	return current, nil
}

func (r *rescueUseCaseImpl) findReport(ctx context.Context, id uuid.UUID) (*readmodel.Report, error) {
	reportRM, err := r.reportRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, errs.Wrap(err, "failed to find report")
	}
	return reportRM, nil
}

func findLinkByReport(links []readmodel.RescueReportLink, reportID uuid.UUID) *readmodel.RescueReportLink {
	for i := range links {
		if links[i].ReportID == reportID {
			return &links[i]
		}
	}
	return nil
}

func (r *rescueUseCaseImpl) sendNotification(
	ctx context.Context,
	userID, relatedID uuid.UUID,
	typ, title, message string,
) {
	_, err := r.notifier.Notify(ctx, notify.Notification{
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

func (r *rescueUseCaseImpl) logActivity(
	ctx context.Context,
	action string,
	actorID, targetID uuid.UUID,
	description string,
) {
	_, err := r.activityLog.Append(ctx, command.NewActivityEntry{
		Action:      action,
		ActorID:     actorID,
		TargetType:  "rescue",
		TargetID:    targetID,
		Description: description,
	})
	if err != nil {
		slog.Warn("failed to append activity log", "action", action, "error", err.Error())
	}
}
