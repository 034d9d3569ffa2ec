package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether current -> next is a legal edge.
// pending may move to completed or cancelled; both of those are terminal.
func CanTransition(current, next Status) bool {
	if !next.Valid() {
		return false
	}
	return current == StatusPending && next != StatusPending
}
