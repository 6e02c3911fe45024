package response

import (
	"time"

	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AdoptionResponse struct {
	ID                    uuid.UUID  `json:"id"`
	PetID                 uuid.UUID  `json:"petId"`
	UserID                uuid.UUID  `json:"userId"`
	Status                string     `json:"status"`
	ConfirmationSentAt    *time.Time `json:"confirmationSentAt,omitempty"`
	ConfirmationExpiresAt *time.Time `json:"confirmationExpiresAt,omitempty"`
	ApprovalDate          *time.Time `json:"approvalDate,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func FromAdoption(rm *readmodel.Adoption) *AdoptionResponse {
	var resp AdoptionResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAdoptions(rms []*readmodel.Adoption) []*AdoptionResponse {
	out := make([]*AdoptionResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAdoption(rm)
	}
	return out
}
