//go:build unit

package adoption_test

import (
	"testing"

	"pawhaven/internal/domain/adoption"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Run("active statuses hold the pet", func(t *testing.T) {
		assert.True(t, adoption.StatusPending.IsActive())
		assert.True(t, adoption.StatusConfirming.IsActive())
		assert.True(t, adoption.StatusConfirmed.IsActive())
		assert.False(t, adoption.StatusCompleted.IsActive())
		assert.False(t, adoption.StatusCancelled.IsActive())
	})

	t.Run("terminal statuses cannot be cancelled", func(t *testing.T) {
		assert.False(t, adoption.StatusCompleted.CanCancel())
		assert.False(t, adoption.StatusCancelled.CanCancel())
		assert.True(t, adoption.StatusConfirming.CanCancel())
	})

	t.Run("validity", func(t *testing.T) {
		for _, s := range []adoption.Status{
			adoption.StatusPending,
			adoption.StatusConfirming,
			adoption.StatusConfirmed,
			adoption.StatusCompleted,
			adoption.StatusCancelled,
		} {
			assert.True(t, s.IsValid(), s.String())
		}
		assert.False(t, adoption.Status("archived").IsValid())
	})
}
