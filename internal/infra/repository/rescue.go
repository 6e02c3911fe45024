package repository

import (
	"context"

	"pawhaven/internal/domain/rescue"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RescueRepository struct {
	store store.EntityStore
}

func NewRescueRepository(s store.EntityStore) *RescueRepository {
	return &RescueRepository{store: s}
}

func (r *RescueRepository) Create(ctx context.Context, in command.NewRescue) (*readmodel.Rescue, error) {
	data := map[string]any{
		"title":                 in.Title,
		"required_participants": in.RequiredParticipants,
		"status":                in.Status,
	}
	if in.Description != nil {
		data["description"] = *in.Description
	}
	if in.Location != nil {
		data["location"] = *in.Location
	}

	it, err := r.store.Create(ctx, store.CollectionRescues, data)
	if err != nil {
		return nil, err
	}
	out := toRescue(it)
	out.Participants = []readmodel.RescueParticipant{}
	out.Reports = []readmodel.RescueReportLink{}
	return out, nil
}

// FindByID assembles the campaign with its participant and report-link
// children.
func (r *RescueRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.Rescue, error) {
	it, err := r.store.Get(ctx, store.CollectionRescues, id)
	if err != nil {
		return nil, err
	}
	out := toRescue(it)

	participants, err := r.FindParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	links, err := r.FindReportLinks(ctx, id)
	if err != nil {
		return nil, err
	}

	out.Participants = make([]readmodel.RescueParticipant, len(participants))
	for i, p := range participants {
		out.Participants[i] = *p
	}
	out.Reports = make([]readmodel.RescueReportLink, len(links))
	for i, l := range links {
		out.Reports[i] = *l
	}
	return out, nil
}

func (r *RescueRepository) List(ctx context.Context) ([]*readmodel.Rescue, error) {
	items, err := r.store.Find(ctx, store.CollectionRescues, store.Where())
	if err != nil {
		return nil, err
	}
	return mapItems(items, toRescue), nil
}

func (r *RescueRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*readmodel.Rescue, error) {
	links, err := r.store.Find(ctx, store.CollectionRescueParticipants,
		store.Where().Eq("user_id", userID))
	if err != nil {
		return nil, err
	}

	out := make([]*readmodel.Rescue, 0, len(links))
	for _, link := range links {
		it, err := r.store.Get(ctx, store.CollectionRescues, store.Item(link).UUID("rescue_id"))
		if err != nil {
			return nil, err
		}
		out = append(out, toRescue(it))
	}
	return out, nil
}

func (r *RescueRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status rescue.Status) (*readmodel.Rescue, error) {
	it, err := r.store.Update(ctx, store.CollectionRescues, id, map[string]any{
		"status": status.String(),
	})
	if err != nil {
		return nil, err
	}
	return toRescue(it), nil
}

func (r *RescueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, store.CollectionRescues, id)
}

// ---- participants ----

func (r *RescueRepository) AddParticipant(ctx context.Context, rescueID, userID uuid.UUID, role rescue.Role) (*readmodel.RescueParticipant, error) {
	it, err := r.store.Create(ctx, store.CollectionRescueParticipants, map[string]any{
		"rescue_id": rescueID,
		"user_id":   userID,
		"role":      role,
	})
	if err != nil {
		return nil, err
	}
	return toParticipant(it), nil
}

func (r *RescueRepository) FindParticipants(ctx context.Context, rescueID uuid.UUID) ([]*readmodel.RescueParticipant, error) {
	items, err := r.store.Find(ctx, store.CollectionRescueParticipants,
		store.Where().Eq("rescue_id", rescueID))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toParticipant), nil
}

func (r *RescueRepository) FindParticipantByUser(ctx context.Context, rescueID, userID uuid.UUID) (*readmodel.RescueParticipant, error) {
	items, err := r.store.Find(ctx, store.CollectionRescueParticipants,
		store.Where().Eq("rescue_id", rescueID).Eq("user_id", userID).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return toParticipant(items[0]), nil
}

func (r *RescueRepository) RemoveParticipant(ctx context.Context, participantID uuid.UUID) error {
	return r.store.Delete(ctx, store.CollectionRescueParticipants, participantID)
}

// ---- report links ----

func (r *RescueRepository) AddReportLink(ctx context.Context, rescueID, reportID uuid.UUID, status rescue.LinkStatus) (*readmodel.RescueReportLink, error) {
	it, err := r.store.Create(ctx, store.CollectionRescueReports, map[string]any{
		"rescue_id": rescueID,
		"report_id": reportID,
		"status":    status,
	})
	if err != nil {
		return nil, err
	}
	return toReportLink(it), nil
}

func (r *RescueRepository) FindReportLinks(ctx context.Context, rescueID uuid.UUID) ([]*readmodel.RescueReportLink, error) {
	items, err := r.store.Find(ctx, store.CollectionRescueReports,
		store.Where().Eq("rescue_id", rescueID))
	if err != nil {
		return nil, err
	}
	return mapItems(items, toReportLink), nil
}

func (r *RescueRepository) FindReportLink(ctx context.Context, linkID uuid.UUID) (*readmodel.RescueReportLink, error) {
	it, err := r.store.Get(ctx, store.CollectionRescueReports, linkID)
	if err != nil {
		return nil, err
	}
	return toReportLink(it), nil
}

func (r *RescueRepository) UpdateReportLink(ctx context.Context, linkID uuid.UUID, status rescue.LinkStatus, note *string) (*readmodel.RescueReportLink, error) {
	patch := map[string]any{
		"status": status,
	}
	if note != nil {
		patch["note"] = *note
	}

	it, err := r.store.Update(ctx, store.CollectionRescueReports, linkID, patch)
	if err != nil {
		return nil, err
	}
	return toReportLink(it), nil
}

func (r *RescueRepository) RemoveReportLink(ctx context.Context, linkID uuid.UUID) error {
	return r.store.Delete(ctx, store.CollectionRescueReports, linkID)
}
