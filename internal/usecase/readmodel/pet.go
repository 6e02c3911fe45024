package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
