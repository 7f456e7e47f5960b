package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

const ticketsCollection = "tickets"

type ticketDocument struct {
	ID           int        `bson:"_id"`
	Title        string     `bson:"title"`
	Notes        string     `bson:"notes"`
	Priority     int        `bson:"priority"`
	Status       int        `bson:"status"`
	TechnicianID int        `bson:"technician_id"`
	ClientID     int        `bson:"client_id"`
	OpenedAt     time.Time  `bson:"opened_at"`
	ClosedAt     *time.Time `bson:"closed_at,omitempty"`
}

func toTicketDocument(t *domain.Ticket) ticketDocument {
	return ticketDocument{
		ID:           t.ID,
		Title:        t.Title,
		Notes:        t.Notes,
		Priority:     t.Priority.Code(),
		Status:       t.Status.Code(),
		TechnicianID: t.TechnicianID,
		ClientID:     t.ClientID,
		OpenedAt:     t.OpenedAt,
		ClosedAt:     t.ClosedAt,
	}
}

func (d ticketDocument) toDomain() (*domain.Ticket, error) {
	priority, err := domain.PriorityFromCode(d.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", d.ID, err)
	}
	status, err := domain.StatusFromCode(d.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", d.ID, err)
	}
	return &domain.Ticket{
		ID:           d.ID,
		Title:        d.Title,
		Notes:        d.Notes,
		Priority:     priority,
		Status:       status,
		TechnicianID: d.TechnicianID,
		ClientID:     d.ClientID,
		OpenedAt:     d.OpenedAt,
		ClosedAt:     d.ClosedAt,
	}, nil
}

// TicketRepository persists tickets with integer ids allocated from the
// counters collection.
type TicketRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

var _ ports.TicketRepository = (*TicketRepository)(nil)

func NewTicketRepository(db *mongo.Database) *TicketRepository {
	return &TicketRepository{
		db:         db,
		collection: db.Collection(ticketsCollection),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	id, err := nextID(ctx, r.db, ticketsCollection)
	if err != nil {
		return nil, err
	}

	created := *t
	created.ID = id

	if _, err := r.collection.InsertOne(ctx, toTicketDocument(&created)); err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}
	return &created, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.ID}, toTicketDocument(t))
	if err != nil {
		return nil, fmt.Errorf("update ticket %d: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrTicketNotFound
	}
	return t, nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id int) (*domain.Ticket, error) {
	var doc ticketDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find ticket %d: %w", id, err)
	}
	return doc.toDomain()
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]*domain.Ticket, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer cursor.Close(ctx)

	tickets := make([]*domain.Ticket, 0)
	for cursor.Next(ctx) {
		var doc ticketDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		ticket, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}
	return tickets, nil
}

func (r *TicketRepository) CountByPerson(ctx context.Context, personID int) (int64, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"technician_id": personID},
		bson.M{"client_id": personID},
	}}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count tickets for person %d: %w", personID, err)
	}
	return count, nil
}
