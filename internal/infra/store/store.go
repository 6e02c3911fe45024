// Package store defines the generic item-store contract the lifecycle
// managers are written against. Collections are schemaless documents; the
// typed filter builder covers the operator set the lifecycle logic needs
// (equals, in, range).
package store

import (
	"context"

	"github.com/google/uuid"
)

// Collection names. Child records (participants, report links) are their own
// collections whose lifetime is bound to the campaign that created them.
const (
	CollectionPets               = "pets"
	CollectionReports            = "reports"
	CollectionAdoptions          = "adoptions"
	CollectionRescues            = "rescues"
	CollectionRescueParticipants = "rescue_participants"
	CollectionRescueReports      = "rescue_reports"
	CollectionNotifications      = "notifications"
	CollectionUsers              = "users"
	CollectionActivityLog        = "activity_log"
)

// Fields every stored item carries.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

type EntityStore interface {
	Find(ctx context.Context, collection string, filter Filter) ([]Item, error)
	Get(ctx context.Context, collection string, id uuid.UUID) (Item, error)
	Create(ctx context.Context, collection string, data map[string]any) (Item, error)
	Update(ctx context.Context, collection string, id uuid.UUID, patch map[string]any) (Item, error)
	Delete(ctx context.Context, collection string, id uuid.UUID) error
}
