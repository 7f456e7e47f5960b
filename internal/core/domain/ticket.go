package domain

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a ticket.
type Status int

const (
	StatusOpen       Status = 0
	StatusInProgress Status = 1
	StatusClosed     Status = 2
)

var statusNames = map[Status]string{
	StatusOpen:       "OPEN",
	StatusInProgress: "IN_PROGRESS",
	StatusClosed:     "CLOSED",
}

// Code returns the stable numeric code of the status.
func (s Status) Code() int { return int(s) }

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// StatusFromCode maps a numeric code back to its Status, failing on unknown
// codes rather than defaulting.
func StatusFromCode(code int) (Status, error) {
	s := Status(code)
	if _, ok := statusNames[s]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStatusCode, code)
	}
	return s, nil
}

// Priority represents the urgency of a ticket.
type Priority int

const (
	PriorityLow    Priority = 0
	PriorityMedium Priority = 1
	PriorityHigh   Priority = 2
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
}

// Code returns the stable numeric code of the priority.
func (p Priority) Code() int { return int(p) }

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// PriorityFromCode maps a numeric code back to its Priority, failing on
// unknown codes rather than defaulting.
func PriorityFromCode(code int) (Priority, error) {
	p := Priority(code)
	if _, ok := priorityNames[p]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPriorityCode, code)
	}
	return p, nil
}

// Ticket is a support request opened by a client and assigned to a
// technician. ClosedAt is set exactly once, when the status reaches CLOSED.
type Ticket struct {
	ID           int
	Title        string
	Notes        string
	Priority     Priority
	Status       Status
	TechnicianID int
	ClientID     int
	OpenedAt     time.Time
	ClosedAt     *time.Time
}
