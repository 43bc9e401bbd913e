package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusWaiting    TicketStatus = "waiting"
	StatusCompleted  TicketStatus = "completed"
	StatusCancelled  TicketStatus = "cancelled"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusWaiting:    true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// ticketStatusTransitions is the lifecycle contract. Completed and cancelled
// are terminal: they have no outgoing transitions.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusWaiting,
		StatusCancelled,
	},
	StatusInProgress: {
		StatusWaiting,
		StatusCompleted,
		StatusCancelled,
	},
	StatusWaiting: {
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusCompleted || ts == StatusCancelled
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsWaiting() bool {
	return ts == StatusWaiting
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func (ts TicketStatus) IsCancelled() bool {
	return ts == StatusCancelled
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
