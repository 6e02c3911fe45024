//go:build unit

package notify_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pawhaven/internal/infra/repository"
	"pawhaven/internal/infra/store"
	"pawhaven/internal/infra/store/memory"
	"pawhaven/internal/notify"
	"pawhaven/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	dedupWindow = 5 * time.Second
	frontendURL = "https://app.pawhaven.test"
)

// recordingMailer captures outbound mail for assertions.
type recordingMailer struct {
	to      []string
	bodies  []string
	subject []string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	m.bodies = append(m.bodies, body)
	return nil
}

func newGateway(t *testing.T) (*notify.StoreGateway, *memory.Store, *clock.MockClock) {
	t.Helper()
	gateway, mem, clk, _ := newGatewayWithMailer(t)
	return gateway, mem, clk
}

func newGatewayWithMailer(t *testing.T) (*notify.StoreGateway, *memory.Store, *clock.MockClock, *recordingMailer) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mem := memory.New(clk)
	mailer := &recordingMailer{}
	gateway := notify.NewStoreGateway(
		repository.NewNotificationRepository(mem),
		repository.NewUserRepository(mem),
		mailer,
		notify.NewNopDedup(),
		dedupWindow,
		frontendURL,
		clk,
	)
	return gateway, mem, clk, mailer
}

func TestNotifyCreatesRecord(t *testing.T) {
	t.Parallel()
	gateway, mem, _ := newGateway(t)
	ctx := t.Context()

	n := notify.Notification{
		UserID:    uuid.New(),
		Title:     "Adoption Confirmation Required",
		Message:   "Please confirm",
		Type:      notify.TypeAdoption,
		RelatedID: uuid.New(),
	}

	record, err := gateway.Notify(ctx, n)
	require.NoError(t, err)
	require.Equal(t, n.UserID, record.UserID)
	require.False(t, record.IsRead)

	rows, err := mem.Find(ctx, store.CollectionNotifications, store.Where())
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestNotifyDeduplicatesWithinWindow(t *testing.T) {
	t.Parallel()
	gateway, mem, clk := newGateway(t)
	ctx := t.Context()

	n := notify.Notification{
		UserID:    uuid.New(),
		Title:     "Rescue Status: in_progress",
		Message:   "On the way",
		Type:      notify.TypeRescue,
		RelatedID: uuid.New(),
	}

	first, err := gateway.Notify(ctx, n)
	require.NoError(t, err)

	clk.Add(2 * time.Second)
	second, err := gateway.Notify(ctx, n)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	rows, err := mem.Find(ctx, store.CollectionNotifications, store.Where())
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestNotifyAfterWindowCreatesNewRecord(t *testing.T) {
	t.Parallel()
	gateway, mem, clk := newGateway(t)
	ctx := t.Context()

	n := notify.Notification{
		UserID:    uuid.New(),
		Title:     "Rescue Status: completed",
		Message:   "Done",
		Type:      notify.TypeRescue,
		RelatedID: uuid.New(),
	}

	first, err := gateway.Notify(ctx, n)
	require.NoError(t, err)

	clk.Add(dedupWindow + time.Second)
	second, err := gateway.Notify(ctx, n)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	rows, err := mem.Find(ctx, store.CollectionNotifications, store.Where())
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestNotifyEmailCarriesFrontendLink(t *testing.T) {
	t.Parallel()
	gateway, mem, _, mailer := newGatewayWithMailer(t)
	ctx := t.Context()

	userID := uuid.New()
	_, err := mem.Create(ctx, store.CollectionUsers, map[string]any{
		"id":         userID.String(),
		"email":      "adopter@example.com",
		"first_name": "Ana",
		"last_name":  "Reyes",
	})
	require.NoError(t, err)

	relatedID := uuid.New()
	_, err = gateway.Notify(ctx, notify.Notification{
		UserID:    userID,
		Title:     "Adoption Confirmation Required",
		Message:   "Please confirm",
		Type:      notify.TypeAdoption,
		RelatedID: relatedID,
	})
	require.NoError(t, err)

	require.Len(t, mailer.to, 1)
	require.Equal(t, "adopter@example.com", mailer.to[0])
	require.True(t, strings.Contains(mailer.bodies[0], frontendURL+"/adoptions/"+relatedID.String()),
		"email body should link to the adoption page: %s", mailer.bodies[0])
}

func TestNotifyDifferentTypeIsNotADuplicate(t *testing.T) {
	t.Parallel()
	gateway, mem, _ := newGateway(t)
	ctx := t.Context()

	userID, relatedID := uuid.New(), uuid.New()
	_, err := gateway.Notify(ctx, notify.Notification{
		UserID: userID, Title: "a", Message: "a", Type: notify.TypeRescue, RelatedID: relatedID,
	})
	require.NoError(t, err)

	_, err = gateway.Notify(ctx, notify.Notification{
		UserID: userID, Title: "b", Message: "b", Type: notify.TypeReport, RelatedID: relatedID,
	})
	require.NoError(t, err)

	rows, err := mem.Find(ctx, store.CollectionNotifications, store.Where())
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
