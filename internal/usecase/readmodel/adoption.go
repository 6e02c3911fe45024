package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type Adoption struct {
	ID                    uuid.UUID  `json:"id"`
	PetID                 uuid.UUID  `json:"pet_id"`
	UserID                uuid.UUID  `json:"user_id"`
	Status                string     `json:"status"`
	ConfirmationSentAt    *time.Time `json:"confirmation_sent_at,omitempty"`
	ConfirmationExpiresAt *time.Time `json:"confirmation_expires_at,omitempty"`
	ApprovalDate          *time.Time `json:"approval_date,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
