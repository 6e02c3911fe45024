// Package command holds the write-side input structs shared between the
// lifecycle managers and the persistence layer.
package command

import (
	"pawhaven/internal/domain/rescue"

	"github.com/google/uuid"
)

type NewAdoption struct {
	PetID  uuid.UUID
	UserID uuid.UUID
	Notes  *string
}

type NewRescue struct {
	Title                string
	Description          *string
	Location             *string
	RequiredParticipants int
	Status               rescue.Status
}

type NewNotification struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	RelatedID uuid.UUID
}

type NewActivityEntry struct {
	Action      string
	ActorID     uuid.UUID
	TargetType  string
	TargetID    uuid.UUID
	Description string
}
