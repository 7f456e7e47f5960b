package ports

import (
	"context"

	"github.com/turmab/helpdesk/internal/core/domain"
)

// PersonInput carries the data needed to create or update a client or
// technician. RoleCodes are the numeric codes of the requested roles; the
// service validates each against the closed role set and always ensures the
// kind's base role is present.
type PersonInput struct {
	Name      string
	CPF       string
	Email     string
	Password  string
	RoleCodes []int
}

// PersonService defines the CRUD use-cases shared by the client and
// technician resources.
type PersonService interface {
	FindByID(ctx context.Context, id int) (*domain.Person, error)
	FindAll(ctx context.Context) ([]*domain.Person, error)
	Create(ctx context.Context, input PersonInput) (*domain.Person, error)
	Update(ctx context.Context, id int, input PersonInput) (*domain.Person, error)
	Delete(ctx context.Context, id int) error
}
