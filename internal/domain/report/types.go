package report

type Status string

const (
	StatusPending  Status = "pending"
	StatusAssigned Status = "assigned"
	StatusResolved Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusResolved:
		return true
	default:
		return false
	}
}

// IsClaimable reports whether the report may be linked to a campaign.
// A report belongs to at most one active campaign at a time; the pending
// status is what returns it to the pool.
func (s Status) IsClaimable() bool {
	return s == StatusPending
}
