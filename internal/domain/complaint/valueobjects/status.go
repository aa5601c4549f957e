package valueobjects

import "fmt"

// Status is the lifecycle state of a complaint. Wire values match the
// complaints.status enum exactly, including the space in "In Progress".
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

// CanTransitionTo reports whether the status may move to target. Any valid
// status may be set directly, including reopening a resolved complaint.
// Restricting transitions would be a breaking change for existing clients.
func (s Status) CanTransitionTo(target Status) bool {
	return target.IsValid()
}

// AllStatuses returns the statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}

// ParseStatus validates a raw string against the enum.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %q (expected Pending, In Progress or Resolved)", s)
	}
	return status, nil
}
