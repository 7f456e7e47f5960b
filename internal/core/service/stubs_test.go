package service

import (
	"context"
	"errors"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

// stubPersonRepo is an in-memory ports.PersonRepository shared by the service
// tests. failWith forces every operation to return that error.
type stubPersonRepo struct {
	persons  map[int]*domain.Person
	nextID   int
	failWith error
}

func newStubPersonRepo() *stubPersonRepo {
	return &stubPersonRepo{persons: make(map[int]*domain.Person), nextID: 1}
}

func clonePerson(p *domain.Person) *domain.Person {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Roles = append([]domain.Role(nil), p.Roles...)
	return &clone
}

func (r *stubPersonRepo) Create(_ context.Context, p *domain.Person) (*domain.Person, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	created := clonePerson(p)
	created.ID = r.nextID
	r.nextID++
	r.persons[created.ID] = clonePerson(created)
	return created, nil
}

func (r *stubPersonRepo) Update(_ context.Context, p *domain.Person) (*domain.Person, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	existing, ok := r.persons[p.ID]
	if !ok || existing.Kind != p.Kind {
		return nil, domain.ErrPersonNotFound
	}
	r.persons[p.ID] = clonePerson(p)
	return clonePerson(p), nil
}

func (r *stubPersonRepo) Delete(_ context.Context, kind domain.PersonKind, id int) error {
	if r.failWith != nil {
		return r.failWith
	}
	existing, ok := r.persons[id]
	if !ok || existing.Kind != kind {
		return domain.ErrPersonNotFound
	}
	delete(r.persons, id)
	return nil
}

func (r *stubPersonRepo) FindByID(_ context.Context, kind domain.PersonKind, id int) (*domain.Person, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	existing, ok := r.persons[id]
	if !ok || existing.Kind != kind {
		return nil, domain.ErrPersonNotFound
	}
	return clonePerson(existing), nil
}

func (r *stubPersonRepo) FindAll(_ context.Context, kind domain.PersonKind) ([]*domain.Person, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*domain.Person, 0)
	for _, p := range r.persons {
		if p.Kind == kind {
			out = append(out, clonePerson(p))
		}
	}
	return out, nil
}

func (r *stubPersonRepo) FindByEmail(_ context.Context, email string) (*domain.Person, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, p := range r.persons {
		if p.Email == email {
			return clonePerson(p), nil
		}
	}
	return nil, domain.ErrPersonNotFound
}

func (r *stubPersonRepo) FindByCPF(_ context.Context, cpf string) (*domain.Person, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, p := range r.persons {
		if p.CPF == cpf {
			return clonePerson(p), nil
		}
	}
	return nil, domain.ErrPersonNotFound
}

// stubTicketRepo is an in-memory ports.TicketRepository.
type stubTicketRepo struct {
	tickets map[int]*domain.Ticket
	nextID  int
}

func newStubTicketRepo() *stubTicketRepo {
	return &stubTicketRepo{tickets: make(map[int]*domain.Ticket), nextID: 1}
}

func cloneTicket(t *domain.Ticket) *domain.Ticket {
	if t == nil {
		return nil
	}
	clone := *t
	if t.ClosedAt != nil {
		closed := *t.ClosedAt
		clone.ClosedAt = &closed
	}
	return &clone
}

func (r *stubTicketRepo) Create(_ context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	created := cloneTicket(t)
	created.ID = r.nextID
	r.nextID++
	r.tickets[created.ID] = cloneTicket(created)
	return created, nil
}

func (r *stubTicketRepo) Update(_ context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	if _, ok := r.tickets[t.ID]; !ok {
		return nil, domain.ErrTicketNotFound
	}
	r.tickets[t.ID] = cloneTicket(t)
	return cloneTicket(t), nil
}

func (r *stubTicketRepo) FindByID(_ context.Context, id int) (*domain.Ticket, error) {
	t, ok := r.tickets[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return cloneTicket(t), nil
}

func (r *stubTicketRepo) FindAll(_ context.Context) ([]*domain.Ticket, error) {
	out := make([]*domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, cloneTicket(t))
	}
	return out, nil
}

func (r *stubTicketRepo) CountByPerson(_ context.Context, personID int) (int64, error) {
	var n int64
	for _, t := range r.tickets {
		if t.TechnicianID == personID || t.ClientID == personID {
			n++
		}
	}
	return n, nil
}

// stubPublisher records published events in order.
type stubPublisher struct {
	events []ports.TicketEvent
}

func (p *stubPublisher) Publish(event ports.TicketEvent) {
	p.events = append(p.events, event)
}

var errStoreDown = errors.New("store down")
