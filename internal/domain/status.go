package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"       // Created, not started
	StatusInProgress Status = "inprogress" // Being worked on
	StatusCompleted  Status = "completed"  // Done
)

// AllStatuses returns all valid status values in display order.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted}
}

// Toggle flips between completed and todo. A task that is in progress
// toggles directly to completed; this two-state toggle is intentional,
// observable behavior and must not be turned into a three-way cycle.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusTodo
	}
	return StatusCompleted
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
