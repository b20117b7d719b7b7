package domain

// Status is the triage lifecycle tag shared by CustomRequest and Contact.
// Transitions are deliberately unordered: the admin surface may set any
// value from any current value, including a no-op re-set.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// Valid reports whether s is one of the three known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusClosed:
		return true
	}
	return false
}
