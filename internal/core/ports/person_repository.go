package ports

import (
	"context"

	"github.com/turmab/helpdesk/internal/core/domain"
)

// PersonRepository defines persistence operations for clients and
// technicians. Kind-scoped lookups serve the CRUD resources; the e-mail and
// CPF lookups span both kinds because both fields are unique system-wide
// (FindByEmail doubles as the credential-store lookup of the auth pipeline).
type PersonRepository interface {
	Create(ctx context.Context, p *domain.Person) (*domain.Person, error)
	Update(ctx context.Context, p *domain.Person) (*domain.Person, error)
	Delete(ctx context.Context, kind domain.PersonKind, id int) error
	FindByID(ctx context.Context, kind domain.PersonKind, id int) (*domain.Person, error)
	FindAll(ctx context.Context, kind domain.PersonKind) ([]*domain.Person, error)
	FindByEmail(ctx context.Context, email string) (*domain.Person, error)
	FindByCPF(ctx context.Context, cpf string) (*domain.Person, error)
}
