package repository

import (
	"pawhaven/internal/infra/store"
	"pawhaven/internal/usecase/readmodel"
)

func toPet(it store.Item) *readmodel.Pet {
	return &readmodel.Pet{
		ID:        it.ID(),
		Name:      it.String("name"),
		Species:   it.String("species"),
		Status:    it.String("status"),
		CreatedAt: it.Time(store.FieldCreatedAt),
		UpdatedAt: it.Time(store.FieldUpdatedAt),
	}
}

func toReport(it store.Item) *readmodel.Report {
	return &readmodel.Report{
		ID:          it.ID(),
		Status:      it.String("status"),
		Title:       it.String("title"),
		Species:     it.String("species"),
		Location:    it.String("location"),
		ReporterID:  it.UUID("reporter_id"),
		Description: it.StringPtr("description"),
		CreatedAt:   it.Time(store.FieldCreatedAt),
		UpdatedAt:   it.Time(store.FieldUpdatedAt),
	}
}

func toAdoption(it store.Item) *readmodel.Adoption {
	return &readmodel.Adoption{
		ID:                    it.ID(),
		PetID:                 it.UUID("pet_id"),
		UserID:                it.UUID("user_id"),
		Status:                it.String("status"),
		ConfirmationSentAt:    it.TimePtr("confirmation_sent_at"),
		ConfirmationExpiresAt: it.TimePtr("confirmation_expires_at"),
		ApprovalDate:          it.TimePtr("approval_date"),
		Notes:                 it.StringPtr("notes"),
		CreatedAt:             it.Time(store.FieldCreatedAt),
		UpdatedAt:             it.Time(store.FieldUpdatedAt),
	}
}

func toRescue(it store.Item) *readmodel.Rescue {
	return &readmodel.Rescue{
		ID:                   it.ID(),
		Status:               it.String("status"),
		Title:                it.String("title"),
		Description:          it.StringPtr("description"),
		Location:             it.StringPtr("location"),
		RequiredParticipants: it.Int("required_participants"),
		CreatedAt:            it.Time(store.FieldCreatedAt),
		UpdatedAt:            it.Time(store.FieldUpdatedAt),
	}
}

func toParticipant(it store.Item) *readmodel.RescueParticipant {
	return &readmodel.RescueParticipant{
		ID:        it.ID(),
		RescueID:  it.UUID("rescue_id"),
		UserID:    it.UUID("user_id"),
		Role:      it.String("role"),
		CreatedAt: it.Time(store.FieldCreatedAt),
	}
}

func toReportLink(it store.Item) *readmodel.RescueReportLink {
	return &readmodel.RescueReportLink{
		ID:        it.ID(),
		RescueID:  it.UUID("rescue_id"),
		ReportID:  it.UUID("report_id"),
		Status:    it.String("status"),
		Note:      it.StringPtr("note"),
		CreatedAt: it.Time(store.FieldCreatedAt),
		UpdatedAt: it.Time(store.FieldUpdatedAt),
	}
}

func toNotification(it store.Item) *readmodel.Notification {
	return &readmodel.Notification{
		ID:        it.ID(),
		UserID:    it.UUID("user_id"),
		Title:     it.String("title"),
		Message:   it.String("message"),
		Type:      it.String("type"),
		RelatedID: it.UUID("related_id"),
		IsRead:    it.Bool("is_read"),
		ReadAt:    it.TimePtr("read_at"),
		CreatedAt: it.Time(store.FieldCreatedAt),
	}
}

func toUser(it store.Item) *readmodel.User {
	return &readmodel.User{
		ID:        it.ID(),
		Email:     it.String("email"),
		FirstName: it.String("first_name"),
		LastName:  it.String("last_name"),
	}
}

func toActivityEntry(it store.Item) *readmodel.ActivityEntry {
	return &readmodel.ActivityEntry{
		ID:          it.ID(),
		Action:      it.String("action"),
		ActorID:     it.UUID("actor_id"),
		TargetType:  it.String("target_type"),
		TargetID:    it.UUID("target_id"),
		Description: it.String("description"),
		CreatedAt:   it.Time(store.FieldCreatedAt),
	}
}
