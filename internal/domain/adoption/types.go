package adoption

import "time"

// ConfirmationWindow is how long the adopter has to confirm after the
// confirmation email is sent.
const ConfirmationWindow = 7 * 24 * time.Hour

// ExpiredNote is appended to the adoption's notes when the confirmation
// window lapses and the adoption is auto-cancelled.
const ExpiredNote = "auto-cancelled: confirmation expired"

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirming Status = "confirming"
	StatusConfirmed  Status = "confirmed"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirming, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the adoption still holds its pet. At most one
// active adoption may exist per pet at any time.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirming, StatusConfirmed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanCancel reports whether the cancel transition is permitted from s.
func (s Status) CanCancel() bool {
	return s.IsActive()
}

// ActiveStatuses lists the states that hold a pet, for store filters.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirming, StatusConfirmed}
}
