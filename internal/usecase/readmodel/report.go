package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	Title       string    `json:"title"`
	Species     string    `json:"species"`
	Location    string    `json:"location"`
	ReporterID  uuid.UUID `json:"reporter_id"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
