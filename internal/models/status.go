package models

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

func (s Status) Valid() bool {
	return validStatuses[s]
}

func (s Status) String() string {
	return string(s)
}

// Toggle flips a checklist checkbox: completed tasks go back to pending,
// anything else becomes completed.
func (s Status) Toggle() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

func ParseStatus(s string) (Status, bool) {
	status := Status(s)
	return status, status.Valid()
}
