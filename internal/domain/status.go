package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending Status = "pending" // Created, not yet completed
	StatusDone    Status = "done"    // Completed
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusDone}
}

// transitions defines the allowed status transitions.
// Flow: pending ⇄ done
var transitions = map[Status][]Status{
	StatusPending: {StatusDone},
	StatusDone:    {StatusPending},
}

// CanTransitionTo returns true if the status can transition to the target status.
// Unknown statuses read from disk behave like pending.
func (s Status) CanTransitionTo(target Status) bool {
	from := s
	if !from.IsValid() {
		from = StatusPending
	}
	for _, t := range transitions[from] {
		if t == target {
			return true
		}
	}
	return false
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone:
		return true
	default:
		return false
	}
}
