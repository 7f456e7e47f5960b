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

const personsCollection = "persons"

type personDocument struct {
	ID           int       `bson:"_id"`
	Kind         string    `bson:"kind"`
	Name         string    `bson:"name"`
	CPF          string    `bson:"cpf"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Roles        []int     `bson:"roles"`
	CreatedAt    time.Time `bson:"created_at"`
}

func toPersonDocument(p *domain.Person) personDocument {
	roles := make([]int, 0, len(p.Roles))
	for _, r := range p.Roles {
		roles = append(roles, r.Code())
	}
	return personDocument{
		ID:           p.ID,
		Kind:         string(p.Kind),
		Name:         p.Name,
		CPF:          p.CPF,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Roles:        roles,
		CreatedAt:    p.CreatedAt,
	}
}

func (d personDocument) toDomain() (*domain.Person, error) {
	roles := make([]domain.Role, 0, len(d.Roles))
	for _, code := range d.Roles {
		role, err := domain.RoleFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", d.ID, err)
		}
		roles = append(roles, role)
	}
	return &domain.Person{
		ID:           d.ID,
		Kind:         domain.PersonKind(d.Kind),
		Name:         d.Name,
		CPF:          d.CPF,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Roles:        roles,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// PersonRepository persists clients and technicians in a single collection,
// discriminated by the kind field. Integer ids come from the counters
// collection so the API can expose small, stable numeric identifiers.
type PersonRepository struct {
	db         *mongo.Database
	collection *mongo.Collection
}

var _ ports.PersonRepository = (*PersonRepository)(nil)

func NewPersonRepository(db *mongo.Database) *PersonRepository {
	return &PersonRepository{
		db:         db,
		collection: db.Collection(personsCollection),
	}
}

func (r *PersonRepository) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	id, err := nextID(ctx, r.db, personsCollection)
	if err != nil {
		return nil, err
	}

	created := *p
	created.ID = id

	if _, err := r.collection.InsertOne(ctx, toPersonDocument(&created)); err != nil {
		return nil, fmt.Errorf("insert person: %w", err)
	}
	return &created, nil
}

func (r *PersonRepository) Update(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID, "kind": string(p.Kind)}, toPersonDocument(p))
	if err != nil {
		return nil, fmt.Errorf("update person %d: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrPersonNotFound
	}
	return p, nil
}

func (r *PersonRepository) Delete(ctx context.Context, kind domain.PersonKind, id int) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "kind": string(kind)})
	if err != nil {
		return fmt.Errorf("delete person %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

func (r *PersonRepository) FindByID(ctx context.Context, kind domain.PersonKind, id int) (*domain.Person, error) {
	return r.findOne(ctx, bson.M{"_id": id, "kind": string(kind)})
}

func (r *PersonRepository) FindAll(ctx context.Context, kind domain.PersonKind) ([]*domain.Person, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"kind": string(kind)})
	if err != nil {
		return nil, fmt.Errorf("find persons: %w", err)
	}
	defer cursor.Close(ctx)

	persons := make([]*domain.Person, 0)
	for cursor.Next(ctx) {
		var doc personDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode person: %w", err)
		}
		person, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return persons, nil
}

func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*domain.Person, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *PersonRepository) FindByCPF(ctx context.Context, cpf string) (*domain.Person, error) {
	return r.findOne(ctx, bson.M{"cpf": cpf})
}

func (r *PersonRepository) findOne(ctx context.Context, filter bson.M) (*domain.Person, error) {
	var doc personDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find person: %w", err)
	}
	return doc.toDomain()
}
