package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

// PersonService implements the CRUD use-cases for one person kind. The
// client and technician resources share the logic and differ only in kind
// (and therefore in the base role ensured on every create/update).
type PersonService struct {
	persons ports.PersonRepository
	tickets ports.TicketRepository
	kind    domain.PersonKind
}

// NewClientService returns a PersonService scoped to clients.
func NewClientService(persons ports.PersonRepository, tickets ports.TicketRepository) *PersonService {
	return &PersonService{persons: persons, tickets: tickets, kind: domain.KindClient}
}

// NewTechnicianService returns a PersonService scoped to technicians.
func NewTechnicianService(persons ports.PersonRepository, tickets ports.TicketRepository) *PersonService {
	return &PersonService{persons: persons, tickets: tickets, kind: domain.KindTechnician}
}

func (s *PersonService) FindByID(ctx context.Context, id int) (*domain.Person, error) {
	return s.persons.FindByID(ctx, s.kind, id)
}

func (s *PersonService) FindAll(ctx context.Context) ([]*domain.Person, error) {
	return s.persons.FindAll(ctx, s.kind)
}

// Create persists a new person with a bcrypt-hashed password. CPF and e-mail
// must be unique across both kinds; role codes are validated against the
// closed role set and the kind's base role is always present.
func (s *PersonService) Create(ctx context.Context, input ports.PersonInput) (*domain.Person, error) {
	roles, err := rolesFromCodes(input.RoleCodes)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, input.CPF, input.Email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	person := &domain.Person{
		Kind:         s.kind,
		Name:         input.Name,
		CPF:          input.CPF,
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}
	person.AddRole(s.kind.BaseRole())

	return s.persons.Create(ctx, person)
}

// Update replaces the person's data. An empty password keeps the stored
// hash; a non-empty one is re-hashed.
func (s *PersonService) Update(ctx context.Context, id int, input ports.PersonInput) (*domain.Person, error) {
	existing, err := s.persons.FindByID(ctx, s.kind, id)
	if err != nil {
		return nil, err
	}

	roles, err := rolesFromCodes(input.RoleCodes)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(ctx, input.CPF, input.Email, id); err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if input.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	person := &domain.Person{
		ID:           id,
		Kind:         s.kind,
		Name:         input.Name,
		CPF:          input.CPF,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        roles,
		CreatedAt:    existing.CreatedAt,
	}
	person.AddRole(s.kind.BaseRole())

	return s.persons.Update(ctx, person)
}

// Delete removes the person unless tickets still reference them.
func (s *PersonService) Delete(ctx context.Context, id int) error {
	if _, err := s.persons.FindByID(ctx, s.kind, id); err != nil {
		return err
	}

	n, err := s.tickets.CountByPerson(ctx, id)
	if err != nil {
		return fmt.Errorf("count tickets: %w", err)
	}
	if n > 0 {
		return domain.ErrPersonHasTickets
	}

	return s.persons.Delete(ctx, s.kind, id)
}

func rolesFromCodes(codes []int) ([]domain.Role, error) {
	roles := make([]domain.Role, 0, len(codes))
	for _, code := range codes {
		role, err := domain.RoleFromCode(code)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// checkUniqueness rejects CPF or e-mail values already registered to a
// different person (selfID 0 means "creating", so any match conflicts).
func (s *PersonService) checkUniqueness(ctx context.Context, cpf, email string, selfID int) error {
	if other, err := s.persons.FindByCPF(ctx, cpf); err == nil {
		if other.ID != selfID {
			return domain.ErrCPFTaken
		}
	} else if !errors.Is(err, domain.ErrPersonNotFound) {
		return fmt.Errorf("lookup cpf: %w", err)
	}

	if other, err := s.persons.FindByEmail(ctx, email); err == nil {
		if other.ID != selfID {
			return domain.ErrEmailTaken
		}
	} else if !errors.Is(err, domain.ErrPersonNotFound) {
		return fmt.Errorf("lookup e-mail: %w", err)
	}

	return nil
}
