package response

import (
	"time"

	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RescueResponse struct {
	ID                   uuid.UUID                   `json:"id"`
	Status               string                      `json:"status"`
	Title                string                      `json:"title"`
	Description          *string                     `json:"description,omitempty"`
	Location             *string                     `json:"location,omitempty"`
	RequiredParticipants int                         `json:"requiredParticipants"`
	Participants         []RescueParticipantResponse `json:"participants"`
	Reports              []RescueReportLinkResponse  `json:"reports"`
	CreatedAt            time.Time                   `json:"createdAt"`
	UpdatedAt            time.Time                   `json:"updatedAt"`
}

type RescueParticipantResponse struct {
	ID        uuid.UUID `json:"id"`
	RescueID  uuid.UUID `json:"rescueId"`
	UserID    uuid.UUID `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type RescueReportLinkResponse struct {
	ID        uuid.UUID `json:"id"`
	RescueID  uuid.UUID `json:"rescueId"`
	ReportID  uuid.UUID `json:"reportId"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromRescue(rm *readmodel.Rescue) *RescueResponse {
	var resp RescueResponse
	_ = copier.Copy(&resp, rm)
	if resp.Participants == nil {
		resp.Participants = []RescueParticipantResponse{}
	}
	if resp.Reports == nil {
		resp.Reports = []RescueReportLinkResponse{}
	}
	return &resp
}

func FromRescues(rms []*readmodel.Rescue) []*RescueResponse {
	out := make([]*RescueResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRescue(rm)
	}
	return out
}

func FromParticipant(rm *readmodel.RescueParticipant) *RescueParticipantResponse {
	var resp RescueParticipantResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReportLink(rm *readmodel.RescueReportLink) *RescueReportLinkResponse {
	var resp RescueReportLinkResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
