package ports

import (
	"context"
	"time"
)

// Ticket event kinds published by the ticket service.
const (
	TicketEventCreated = "created"
	TicketEventUpdated = "updated"
	TicketEventClosed  = "closed"
)

// TicketEvent describes a change to a ticket, delivered asynchronously to
// interested parties (notifications, audit).
type TicketEvent struct {
	Kind         string
	TicketID     int
	Title        string
	TechnicianID int
	ClientID     int
	At           time.Time
}

// TicketEventPublisher accepts ticket events for asynchronous delivery.
// Publish must not block the caller beyond queueing.
type TicketEventPublisher interface {
	Publish(event TicketEvent)
}

// TicketNotifier delivers a single ticket event to its destination.
type TicketNotifier interface {
	Notify(ctx context.Context, event TicketEvent) error
}
