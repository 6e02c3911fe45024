// Package notify delivers user-facing notifications: an in-app record plus a
// best-effort email. Delivery is idempotent within a short window so that two
// callers racing to drive the same transition produce at most one
// user-visible notification.
package notify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pawhaven/internal/pkg/clock"
	"pawhaven/internal/usecase/command"
	"pawhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type Notification struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	RelatedID uuid.UUID
}

type Gateway interface {
	// Notify records the notification and dispatches the email. When an
	// identical (user, related entity, type) triple was created within the
	// de-duplication window, the existing record is returned and no new row
	// or email is produced.
	Notify(ctx context.Context, n Notification) (*readmodel.Notification, error)
}

// NotificationStore is the slice of the persistence layer the gateway writes
// through.
type NotificationStore interface {
	Create(ctx context.Context, in command.NewNotification) (*readmodel.Notification, error)
	FindRecent(ctx context.Context, userID, relatedID uuid.UUID, typ string, since time.Time) (*readmodel.Notification, error)
}

type RecipientStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.User, error)
}

type StoreGateway struct {
	notifications NotificationStore
	users         RecipientStore
	mailer        Mailer
	dedup         DedupIndex
	window        time.Duration
	frontendURL   string
	clk           clock.Clock
}

var _ Gateway = (*StoreGateway)(nil)

func NewStoreGateway(
	notifications NotificationStore,
	users RecipientStore,
	mailer Mailer,
	dedup DedupIndex,
	window time.Duration,
	frontendURL string,
	clk clock.Clock,
) *StoreGateway {
	return &StoreGateway{
		notifications: notifications,
		users:         users,
		mailer:        mailer,
		dedup:         dedup,
		window:        window,
		frontendURL:   strings.TrimRight(frontendURL, "/"),
		clk:           clk,
	}
}

func (g *StoreGateway) Notify(ctx context.Context, n Notification) (*readmodel.Notification, error) {
	key := strings.Join([]string{n.UserID.String(), n.RelatedID.String(), n.Type}, ":")

	first, err := g.dedup.FirstSeen(ctx, key, g.window)
	if err != nil {
		// Index unavailability must not block delivery; the store query below
		// still prevents duplicates.
		slog.Warn("notification dedup index unavailable", "error", err.Error())
		first = true
	}

	since := g.clk.Now().Add(-g.window)
	existing, err := g.notifications.FindRecent(ctx, n.UserID, n.RelatedID, n.Type, since)
	if err != nil {
		return nil, err
	}
	if existing != nil || !first {
		if existing != nil {
			slog.Debug("duplicate notification suppressed",
				"user_id", n.UserID.String(), "related_id", n.RelatedID.String(), "type", n.Type)
			return existing, nil
		}
		// The index saw the key but the record is not visible yet; re-read
		// once before giving up on the duplicate.
		if existing, err = g.notifications.FindRecent(ctx, n.UserID, n.RelatedID, n.Type, since); err == nil && existing != nil {
			return existing, nil
		}
	}

	record, err := g.notifications.Create(ctx, command.NewNotification{
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		RelatedID: n.RelatedID,
	})
	if err != nil {
		return nil, err
	}

	g.sendEmail(ctx, n)

	return record, nil
}

// sendEmail is best-effort: a transition that succeeded in the store is
// authoritative even if its email could not be delivered.
func (g *StoreGateway) sendEmail(ctx context.Context, n Notification) {
	user, err := g.users.FindByID(ctx, n.UserID)
	if err != nil {
		slog.Warn("failed to load notification recipient",
			"user_id", n.UserID.String(), "error", err.Error())
		return
	}
	if user.Email == "" {
		return
	}

	body := n.Message
	if link := g.detailLink(n); link != "" {
		body += "\n\nView details: " + link
	}

	if err := g.mailer.Send(ctx, user.Email, n.Title, body); err != nil {
		slog.Warn("failed to send notification email",
			"user_id", n.UserID.String(), "type", n.Type, "error", err.Error())
	}
}

// detailLink points the recipient at the frontend page for the entity that
// triggered the notification.
func (g *StoreGateway) detailLink(n Notification) string {
	if g.frontendURL == "" || n.RelatedID == uuid.Nil {
		return ""
	}
	switch n.Type {
	case TypeAdoption:
		return g.frontendURL + "/adoptions/" + n.RelatedID.String()
	case TypeRescue:
		return g.frontendURL + "/rescues/" + n.RelatedID.String()
	case TypeReport:
		return g.frontendURL + "/reports/" + n.RelatedID.String()
	default:
		return ""
	}
}
