package pet

type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted, StatusArchived:
		return true
	default:
		return false
	}
}

// IsAdoptable reports whether an adoption request may be opened for the pet.
// Archived pets are terminal and excluded from matching.
func (s Status) IsAdoptable() bool {
	return s == StatusAvailable
}
