package model

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPickedUp  Status = "picked_up"
	StatusReturned  Status = "returned"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusPickedUp, StatusCancelled},
	StatusPickedUp:  {StatusReturned, StatusCancelled},
	StatusReturned:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusRejected:  {},
	StatusCancelled: {},
}

// ActiveStatuses are the statuses that hold stock.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusPickedUp}

func IsValidStatus(value string) bool {
	_, ok := transitions[Status(value)]

	return ok
}

func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPickedUp:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	next, ok := transitions[s]

	return ok && len(next) == 0
}

// CanTransitionTo reports whether s may move to next. Staying put is not a transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Releases reports whether entering s frees the product for other customers.
func (s Status) Releases() bool {
	return s == StatusReturned || s == StatusCancelled || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}
