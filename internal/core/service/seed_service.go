package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

// SeedService populates the store with a fixed development data set:
// two technicians, two clients, and two tickets. Enabled via the SEED
// configuration switch; safe to run repeatedly (existing e-mails are
// skipped).
type SeedService struct {
	clients     *PersonService
	technicians *PersonService
	tickets     *TicketService
	persons     ports.PersonRepository
	ticketRepo  ports.TicketRepository
	log         zerolog.Logger
}

func NewSeedService(persons ports.PersonRepository, tickets ports.TicketRepository, log zerolog.Logger) *SeedService {
	return &SeedService{
		clients:     NewClientService(persons, tickets),
		technicians: NewTechnicianService(persons, tickets),
		tickets:     NewTicketService(tickets, persons, nil),
		persons:     persons,
		ticketRepo:  tickets,
		log:         log,
	}
}

// Seed inserts the development data set.
func (s *SeedService) Seed(ctx context.Context) error {
	tec1, err := s.ensurePerson(ctx, s.technicians, ports.PersonInput{
		Name: "Bill Gates", CPF: "76045777093", Email: "bill@mail.com", Password: "123",
		RoleCodes: []int{domain.RoleAdmin.Code(), domain.RoleTechnician.Code()},
	})
	if err != nil {
		return err
	}

	tec2, err := s.ensurePerson(ctx, s.technicians, ports.PersonInput{
		Name: "Steve Jobs", CPF: "98765432100", Email: "steve@mail.com", Password: "123",
		RoleCodes: []int{domain.RoleTechnician.Code()},
	})
	if err != nil {
		return err
	}

	cli1, err := s.ensurePerson(ctx, s.clients, ports.PersonInput{
		Name: "Linus Torvalds", CPF: "70511744013", Email: "linus@mail.com", Password: "123",
		RoleCodes: []int{domain.RoleClient.Code()},
	})
	if err != nil {
		return err
	}

	cli2, err := s.ensurePerson(ctx, s.clients, ports.PersonInput{
		Name: "Ada Lovelace", CPF: "12345678901", Email: "ada@mail.com", Password: "123",
		RoleCodes: []int{domain.RoleClient.Code()},
	})
	if err != nil {
		return err
	}

	existing, err := s.ticketRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: list tickets: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seedTickets := []ports.TicketInput{
		{
			Title: "Ticket 01", Notes: "First test ticket",
			PriorityCode: domain.PriorityMedium.Code(), StatusCode: domain.StatusInProgress.Code(),
			TechnicianID: tec1.ID, ClientID: cli1.ID,
		},
		{
			Title: "Ticket 02", Notes: "Printer does not work",
			PriorityCode: domain.PriorityHigh.Code(), StatusCode: domain.StatusOpen.Code(),
			TechnicianID: tec2.ID, ClientID: cli2.ID,
		},
	}
	for _, input := range seedTickets {
		if _, err := s.tickets.Create(ctx, input); err != nil {
			return fmt.Errorf("seed: create ticket: %w", err)
		}
	}

	s.log.Info().Msg("seed data loaded")
	return nil
}

// ensurePerson creates the person unless the e-mail is already registered,
// in which case the existing record is returned.
func (s *SeedService) ensurePerson(ctx context.Context, svc *PersonService, input ports.PersonInput) (*domain.Person, error) {
	existing, err := s.persons.FindByEmail(ctx, input.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrPersonNotFound) {
		return nil, fmt.Errorf("seed: lookup %s: %w", input.Email, err)
	}

	created, err := svc.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("seed: create %s: %w", input.Email, err)
	}
	return created, nil
}
