package ports

import (
	"context"
	"time"
)

// TicketInput carries the data needed to create or update a ticket. Priority
// and status arrive as numeric codes and are mapped through the closed enums
// (unknown codes are an error, never a default).
type TicketInput struct {
	Title        string
	Notes        string
	PriorityCode int
	StatusCode   int
	TechnicianID int
	ClientID     int
}

// TicketDetail is the full ticket view returned by the service, including
// the display names resolved from the referenced persons.
type TicketDetail struct {
	ID             int
	Title          string
	Notes          string
	PriorityCode   int
	StatusCode     int
	TechnicianID   int
	ClientID       int
	TechnicianName string
	ClientName     string
	OpenedAt       time.Time
	ClosedAt       *time.Time
}

// TicketService defines the ticket use-cases.
type TicketService interface {
	FindByID(ctx context.Context, id int) (*TicketDetail, error)
	FindAll(ctx context.Context) ([]*TicketDetail, error)
	Create(ctx context.Context, input TicketInput) (*TicketDetail, error)
	Update(ctx context.Context, id int, input TicketInput) (*TicketDetail, error)
}
