package ports

import "context"

// AuthService authenticates credentials and mints access tokens. Login is
// read-only against storage: both unknown e-mail and wrong password yield
// domain.ErrInvalidCredentials so callers cannot enumerate accounts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
