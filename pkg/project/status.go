package project

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusCompleted  Status = "completed"
)

var transitions = map[Status][]Status{
	StatusNotStarted: {StatusInProgress, StatusSubmitted},
	StatusInProgress: {StatusInProgress, StatusSubmitted},
	StatusSubmitted:  {StatusCompleted},
}

// CanTransition reports whether a project may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Editable reports whether work content may still change.
func (s Status) Editable() bool { return CanTransition(s, StatusInProgress) }

// Submittable reports whether the project can be submitted for review.
func (s Status) Submittable() bool { return CanTransition(s, StatusSubmitted) }
