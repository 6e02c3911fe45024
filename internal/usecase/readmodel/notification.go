package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	RelatedID uuid.UUID  `json:"related_id"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ActivityEntry is one row of the append-only audit trail written on
// externally visible transitions.
type ActivityEntry struct {
	ID          uuid.UUID `json:"id"`
	Action      string    `json:"action"`
	ActorID     uuid.UUID `json:"actor_id"`
	TargetType  string    `json:"target_type"`
	TargetID    uuid.UUID `json:"target_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
