package service

import (
	"context"
	"errors"
	"testing"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

func newTicketFixture(t *testing.T) (*TicketService, *stubPublisher, *domain.Person, *domain.Person) {
	t.Helper()
	persons := newStubPersonRepo()
	tickets := newStubTicketRepo()
	publisher := &stubPublisher{}

	technician, err := persons.Create(context.Background(), &domain.Person{
		Kind: domain.KindTechnician, Name: "Bill Gates", CPF: "76045777093", Email: "bill@mail.com",
	})
	if err != nil {
		t.Fatalf("seed technician: %v", err)
	}
	client, err := persons.Create(context.Background(), &domain.Person{
		Kind: domain.KindClient, Name: "Linus Torvalds", CPF: "70511744013", Email: "linus@mail.com",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	return NewTicketService(tickets, persons, publisher), publisher, technician, client
}

func TestTicketService_Create_ResolvesNames(t *testing.T) {
	svc, publisher, technician, client := newTicketFixture(t)

	detail, err := svc.Create(context.Background(), ports.TicketInput{
		Title: "Printer does not work", Notes: "Third floor",
		PriorityCode: domain.PriorityHigh.Code(), StatusCode: domain.StatusOpen.Code(),
		TechnicianID: technician.ID, ClientID: client.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if detail.TechnicianName != "Bill Gates" || detail.ClientName != "Linus Torvalds" {
		t.Fatalf("names not resolved: %q / %q", detail.TechnicianName, detail.ClientName)
	}
	if detail.OpenedAt.IsZero() {
		t.Fatalf("opened date not stamped")
	}
	if detail.ClosedAt != nil {
		t.Fatalf("open ticket must not carry a closing date")
	}

	if len(publisher.events) != 1 || publisher.events[0].Kind != ports.TicketEventCreated {
		t.Fatalf("expected one created event, got %+v", publisher.events)
	}
}

func TestTicketService_Create_InvalidCodes(t *testing.T) {
	svc, _, technician, client := newTicketFixture(t)

	input := ports.TicketInput{
		Title: "T", PriorityCode: 9, StatusCode: domain.StatusOpen.Code(),
		TechnicianID: technician.ID, ClientID: client.ID,
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidPriorityCode) {
		t.Fatalf("expected ErrInvalidPriorityCode, got %v", err)
	}

	input.PriorityCode = domain.PriorityLow.Code()
	input.StatusCode = 9
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidStatusCode) {
		t.Fatalf("expected ErrInvalidStatusCode, got %v", err)
	}
}

func TestTicketService_Create_UnknownPersons(t *testing.T) {
	svc, _, technician, client := newTicketFixture(t)

	input := ports.TicketInput{
		Title: "T", PriorityCode: domain.PriorityLow.Code(), StatusCode: domain.StatusOpen.Code(),
		TechnicianID: 999, ClientID: client.ID,
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound for technician, got %v", err)
	}

	input.TechnicianID = technician.ID
	input.ClientID = 999
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound for client, got %v", err)
	}
}

func TestTicketService_Update_StampsClosedAtOnce(t *testing.T) {
	svc, publisher, technician, client := newTicketFixture(t)

	input := ports.TicketInput{
		Title: "T", PriorityCode: domain.PriorityMedium.Code(), StatusCode: domain.StatusOpen.Code(),
		TechnicianID: technician.ID, ClientID: client.ID,
	}
	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	input.StatusCode = domain.StatusClosed.Code()
	closed, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if closed.ClosedAt == nil {
		t.Fatalf("closing date not stamped")
	}
	if closed.OpenedAt != created.OpenedAt {
		t.Fatalf("opened date must survive updates")
	}

	again, err := svc.Update(context.Background(), created.ID, input)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if again.ClosedAt == nil || !again.ClosedAt.Equal(*closed.ClosedAt) {
		t.Fatalf("closing date must be stamped exactly once")
	}

	// created, closed, updated
	if len(publisher.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(publisher.events))
	}
	if publisher.events[1].Kind != ports.TicketEventClosed {
		t.Fatalf("expected closed event, got %q", publisher.events[1].Kind)
	}
	if publisher.events[2].Kind != ports.TicketEventUpdated {
		t.Fatalf("expected updated event for already-closed ticket, got %q", publisher.events[2].Kind)
	}
}

func TestTicketService_Update_NotFound(t *testing.T) {
	svc, _, technician, client := newTicketFixture(t)

	_, err := svc.Update(context.Background(), 42, ports.TicketInput{
		Title: "T", PriorityCode: domain.PriorityLow.Code(), StatusCode: domain.StatusOpen.Code(),
		TechnicianID: technician.ID, ClientID: client.ID,
	})
	if !errors.Is(err, domain.ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}

func TestTicketService_NilPublisher(t *testing.T) {
	persons := newStubPersonRepo()
	tickets := newStubTicketRepo()
	technician, _ := persons.Create(context.Background(), &domain.Person{Kind: domain.KindTechnician, Name: "T", Email: "t@mail.com"})
	client, _ := persons.Create(context.Background(), &domain.Person{Kind: domain.KindClient, Name: "C", Email: "c@mail.com"})

	svc := NewTicketService(tickets, persons, nil)
	if _, err := svc.Create(context.Background(), ports.TicketInput{
		Title: "T", PriorityCode: domain.PriorityLow.Code(), StatusCode: domain.StatusOpen.Code(),
		TechnicianID: technician.ID, ClientID: client.ID,
	}); err != nil {
		t.Fatalf("create with nil publisher failed: %v", err)
	}
}

var _ ports.TicketService = (*TicketService)(nil)
