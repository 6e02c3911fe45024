package request

import (
	"github.com/google/uuid"
)

type CreateRescueRequest struct {
	Title                string  `json:"title" binding:"required"`
	Description          *string `json:"description,omitempty"`
	Location             *string `json:"location,omitempty"`
	RequiredParticipants int     `json:"required_participants" binding:"required,min=1"`
}

type AddParticipantRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Role   string    `json:"role" binding:"omitempty,oneof=leader member"`
}

type AddReportRequest struct {
	ReportID uuid.UUID `json:"report_id" binding:"required"`
}

type UpdateReportProgressRequest struct {
	Status string  `json:"status" binding:"required,oneof=in_progress success cancelled"`
	Note   *string `json:"note,omitempty"`
}

type CancelRescueRequest struct {
	Reason *string `json:"reason,omitempty"`
}
