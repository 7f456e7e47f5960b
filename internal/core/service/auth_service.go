package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
	"github.com/turmab/helpdesk/internal/core/token"
)

// AuthService implements login: credential lookup, bcrypt verification, and
// token issuance. It never writes through the person repository.
type AuthService struct {
	persons ports.PersonRepository
	codec   *token.Codec
}

func NewAuthService(persons ports.PersonRepository, codec *token.Codec) *AuthService {
	return &AuthService{persons: persons, codec: codec}
}

// Login verifies the credentials and returns a signed token bound to the
// e-mail. Unknown e-mail and wrong password both map to
// domain.ErrInvalidCredentials; only storage or signing failures surface as
// anything else.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	person, err := s.persons.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrPersonNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup person: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(person.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}
