package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
	"github.com/turmab/helpdesk/internal/core/token"
)

func seedTechnician(t *testing.T, repo *stubPersonRepo, email, password string, roles ...domain.Role) *domain.Person {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	person, err := repo.Create(context.Background(), &domain.Person{
		Kind:         domain.KindTechnician,
		Name:         "Bill Gates",
		CPF:          "76045777093",
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
	})
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}
	return person
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubPersonRepo()
	seedTechnician(t, repo, "bill@mail.com", "123", domain.RoleAdmin, domain.RoleTechnician)

	codec := token.NewCodec("secret", time.Hour)
	svc := NewAuthService(repo, codec)

	signed, err := svc.Login(context.Background(), "bill@mail.com", "123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty string")
	}

	subject, err := codec.Validate(signed)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if subject != "bill@mail.com" {
		t.Fatalf("expected subject bill@mail.com, got %q", subject)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubPersonRepo()
	seedTechnician(t, repo, "bill@mail.com", "123", domain.RoleAdmin)

	svc := NewAuthService(repo, token.NewCodec("secret", time.Hour))

	if _, err := svc.Login(context.Background(), "bill@mail.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubPersonRepo()
	svc := NewAuthService(repo, token.NewCodec("secret", time.Hour))

	// Unknown e-mail must be indistinguishable from a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@mail.com", "123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	repo := newStubPersonRepo()
	svc := NewAuthService(repo, token.NewCodec("secret", time.Hour))

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newStubPersonRepo()
	repo.failWith = errStoreDown
	svc := NewAuthService(repo, token.NewCodec("secret", time.Hour))

	_, err := svc.Login(context.Background(), "bill@mail.com", "123")
	if errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("store failure must not look like bad credentials")
	}
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

var _ ports.AuthService = (*AuthService)(nil)
