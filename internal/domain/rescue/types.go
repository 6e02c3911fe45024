package rescue

// MinRequiredParticipants is the lowest capacity a campaign may be planned with.
const MinRequiredParticipants = 1

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanCancel reports whether the cancel transition is permitted from s.
func (s Status) CanCancel() bool {
	return s == StatusPlanned || s == StatusInProgress
}

// AcceptsParticipants reports whether a user may still join the campaign.
// Joining an in-progress run is allowed; completed/cancelled campaigns are closed.
func (s Status) AcceptsParticipants() bool {
	return s == StatusPlanned || s == StatusInProgress
}

type Role string

const (
	RoleLeader Role = "leader"
	RoleMember Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleLeader || r == RoleMember
}

// LinkStatus is the per-report progress recorded on a campaign's report link.
type LinkStatus string

const (
	LinkInProgress LinkStatus = "in_progress"
	LinkSuccess    LinkStatus = "success"
	LinkCancelled  LinkStatus = "cancelled"
)

func (s LinkStatus) String() string {
	return string(s)
}

func (s LinkStatus) IsValid() bool {
	switch s {
	case LinkInProgress, LinkSuccess, LinkCancelled:
		return true
	default:
		return false
	}
}
