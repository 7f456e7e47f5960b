package service

import (
	"context"
	"time"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

// TicketService implements the ticket use-cases. Successful mutations are
// published to the event dispatcher for asynchronous notification.
type TicketService struct {
	tickets ports.TicketRepository
	persons ports.PersonRepository
	events  ports.TicketEventPublisher
}

// NewTicketService returns a TicketService. events may be nil, in which case
// mutations are not published.
func NewTicketService(tickets ports.TicketRepository, persons ports.PersonRepository, events ports.TicketEventPublisher) *TicketService {
	return &TicketService{tickets: tickets, persons: persons, events: events}
}

func (s *TicketService) FindByID(ctx context.Context, id int) (*ports.TicketDetail, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, ticket)
}

func (s *TicketService) FindAll(ctx context.Context) ([]*ports.TicketDetail, error) {
	tickets, err := s.tickets.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*ports.TicketDetail, 0, len(tickets))
	for _, ticket := range tickets {
		d, err := s.detail(ctx, ticket)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// Create opens a new ticket. The technician and client must exist; priority
// and status codes are mapped through the closed enums. A ticket created
// directly in CLOSED state gets its closing date stamped immediately.
func (s *TicketService) Create(ctx context.Context, input ports.TicketInput) (*ports.TicketDetail, error) {
	ticket, err := s.buildTicket(ctx, input, nil)
	if err != nil {
		return nil, err
	}
	ticket.OpenedAt = time.Now().UTC()

	created, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}

	s.publish(created, ports.TicketEventCreated)
	return s.detail(ctx, created)
}

// Update replaces the ticket's data. The closing date is stamped the first
// time the status reaches CLOSED and preserved afterwards.
func (s *TicketService) Update(ctx context.Context, id int, input ports.TicketInput) (*ports.TicketDetail, error) {
	existing, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket, err := s.buildTicket(ctx, input, existing)
	if err != nil {
		return nil, err
	}
	ticket.ID = id

	updated, err := s.tickets.Update(ctx, ticket)
	if err != nil {
		return nil, err
	}

	kind := ports.TicketEventUpdated
	if updated.Status == domain.StatusClosed && existing.Status != domain.StatusClosed {
		kind = ports.TicketEventClosed
	}
	s.publish(updated, kind)

	return s.detail(ctx, updated)
}

// buildTicket validates the input against the enums and the person store.
// existing is nil on create; on update it supplies the opened/closed dates.
func (s *TicketService) buildTicket(ctx context.Context, input ports.TicketInput, existing *domain.Ticket) (*domain.Ticket, error) {
	priority, err := domain.PriorityFromCode(input.PriorityCode)
	if err != nil {
		return nil, err
	}
	status, err := domain.StatusFromCode(input.StatusCode)
	if err != nil {
		return nil, err
	}

	if _, err := s.persons.FindByID(ctx, domain.KindTechnician, input.TechnicianID); err != nil {
		return nil, err
	}
	if _, err := s.persons.FindByID(ctx, domain.KindClient, input.ClientID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Title:        input.Title,
		Notes:        input.Notes,
		Priority:     priority,
		Status:       status,
		TechnicianID: input.TechnicianID,
		ClientID:     input.ClientID,
	}
	if existing != nil {
		ticket.OpenedAt = existing.OpenedAt
		ticket.ClosedAt = existing.ClosedAt
	}
	if status == domain.StatusClosed && ticket.ClosedAt == nil {
		now := time.Now().UTC()
		ticket.ClosedAt = &now
	}
	return ticket, nil
}

func (s *TicketService) detail(ctx context.Context, ticket *domain.Ticket) (*ports.TicketDetail, error) {
	technician, err := s.persons.FindByID(ctx, domain.KindTechnician, ticket.TechnicianID)
	if err != nil {
		return nil, err
	}
	client, err := s.persons.FindByID(ctx, domain.KindClient, ticket.ClientID)
	if err != nil {
		return nil, err
	}

	return &ports.TicketDetail{
		ID:             ticket.ID,
		Title:          ticket.Title,
		Notes:          ticket.Notes,
		PriorityCode:   ticket.Priority.Code(),
		StatusCode:     ticket.Status.Code(),
		TechnicianID:   ticket.TechnicianID,
		ClientID:       ticket.ClientID,
		TechnicianName: technician.Name,
		ClientName:     client.Name,
		OpenedAt:       ticket.OpenedAt,
		ClosedAt:       ticket.ClosedAt,
	}, nil
}

func (s *TicketService) publish(ticket *domain.Ticket, kind string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ports.TicketEvent{
		Kind:         kind,
		TicketID:     ticket.ID,
		Title:        ticket.Title,
		TechnicianID: ticket.TechnicianID,
		ClientID:     ticket.ClientID,
		At:           time.Now().UTC(),
	})
}
