package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateAdoptionRequest struct {
	PetID uuid.UUID `json:"pet_id" binding:"required"`
	Notes *string   `json:"notes,omitempty"`
}

func (r CreateAdoptionRequest) GetNotes() *string {
	if r.Notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CancelAdoptionRequest struct {
	Reason *string `json:"reason,omitempty"`
}
