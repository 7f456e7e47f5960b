package ports

import (
	"context"

	"github.com/turmab/helpdesk/internal/core/domain"
)

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	FindByID(ctx context.Context, id int) (*domain.Ticket, error)
	FindAll(ctx context.Context) ([]*domain.Ticket, error)
	// CountByPerson returns how many tickets reference the person, either as
	// technician or as client. Used to block deletion of referenced persons.
	CountByPerson(ctx context.Context, personID int) (int64, error)
}
