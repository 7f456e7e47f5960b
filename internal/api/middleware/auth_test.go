package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/token"
)

type stubPersonStore struct {
	persons map[string]*domain.Person
	err     error
}

func (s *stubPersonStore) Create(context.Context, *domain.Person) (*domain.Person, error) {
	panic("not used")
}

func (s *stubPersonStore) Update(context.Context, *domain.Person) (*domain.Person, error) {
	panic("not used")
}

func (s *stubPersonStore) Delete(context.Context, domain.PersonKind, int) error {
	panic("not used")
}

func (s *stubPersonStore) FindByID(context.Context, domain.PersonKind, int) (*domain.Person, error) {
	panic("not used")
}

func (s *stubPersonStore) FindAll(context.Context, domain.PersonKind) ([]*domain.Person, error) {
	panic("not used")
}

func (s *stubPersonStore) FindByCPF(context.Context, string) (*domain.Person, error) {
	panic("not used")
}

func (s *stubPersonStore) FindByEmail(_ context.Context, email string) (*domain.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.persons[email]; ok {
		return p, nil
	}
	return nil, domain.ErrPersonNotFound
}

func runAuth(t *testing.T, store *stubPersonStore, authHeader string) (*domain.Principal, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	codec := token.NewCodec("secret", time.Hour)
	var principal *domain.Principal
	handler := Auth(codec, store)(func(c echo.Context) error {
		principal = PrincipalFrom(c)
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return principal, rec, err
}

func TestAuth_ValidToken_InstallsPrincipalWithStoreRoles(t *testing.T) {
	store := &stubPersonStore{persons: map[string]*domain.Person{
		"bill@mail.com": {
			ID: 1, Email: "bill@mail.com",
			Roles: []domain.Role{domain.RoleAdmin, domain.RoleTechnician},
		},
	}}

	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue("bill@mail.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, rec, err := runAuth(t, store, "Bearer "+signed)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if principal == nil {
		t.Fatalf("principal not installed")
	}
	if principal.Email != "bill@mail.com" || principal.ID != 1 {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	// Roles come from the store, not from the token.
	if !principal.HasRole(domain.RoleAdmin) || !principal.HasRole(domain.RoleTechnician) {
		t.Fatalf("store roles not loaded: %v", principal.Roles)
	}
}

func TestAuth_MissingHeader_ProceedsUnauthenticated(t *testing.T) {
	principal, rec, err := runAuth(t, &stubPersonStore{}, "")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if principal != nil {
		t.Fatalf("expected no principal, got %+v", principal)
	}
}

func TestAuth_WrongScheme_ProceedsUnauthenticated(t *testing.T) {
	principal, _, err := runAuth(t, &stubPersonStore{}, "Basic dXNlcjpwYXNz")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if principal != nil {
		t.Fatalf("expected no principal, got %+v", principal)
	}
}

func TestAuth_GarbageToken_ProceedsUnauthenticated(t *testing.T) {
	principal, _, err := runAuth(t, &stubPersonStore{}, "Bearer not-a-token")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if principal != nil {
		t.Fatalf("expected no principal, got %+v", principal)
	}
}

func TestAuth_ExpiredToken_ProceedsUnauthenticated(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "bill@mail.com",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	store := &stubPersonStore{persons: map[string]*domain.Person{
		"bill@mail.com": {ID: 1, Email: "bill@mail.com"},
	}}
	principal, _, err := runAuth(t, store, "Bearer "+signed)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if principal != nil {
		t.Fatalf("expired token must not authenticate, got %+v", principal)
	}
}

func TestAuth_UnknownSubject_ProceedsUnauthenticated(t *testing.T) {
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue("ghost@mail.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, _, err := runAuth(t, &stubPersonStore{}, "Bearer "+signed)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if principal != nil {
		t.Fatalf("deleted subject must not authenticate, got %+v", principal)
	}
}
