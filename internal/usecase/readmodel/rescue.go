package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type Rescue struct {
	ID                   uuid.UUID           `json:"id"`
	Status               string              `json:"status"`
	Title                string              `json:"title"`
	Description          *string             `json:"description,omitempty"`
	Location             *string             `json:"location,omitempty"`
	RequiredParticipants int                 `json:"required_participants"`
	Participants         []RescueParticipant `json:"participants"`
	Reports              []RescueReportLink  `json:"reports"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type RescueParticipant struct {
	ID        uuid.UUID `json:"id"`
	RescueID  uuid.UUID `json:"rescue_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RescueReportLink is the child record binding a report to a campaign with
// its per-campaign progress.
type RescueReportLink struct {
	ID        uuid.UUID `json:"id"`
	RescueID  uuid.UUID `json:"rescue_id"`
	ReportID  uuid.UUID `json:"report_id"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
