// Package token implements the signed, time-limited credential minted at
// login and verified on every subsequent request. Validation is stateless:
// there is no revocation list, expiry is the only time-based invalidation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 2 * time.Hour

var (
	// ErrExpired means the signature verified but the token is past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed means the token could not be parsed at all.
	ErrMalformed = errors.New("token malformed")
	// ErrInvalid covers bad signatures, wrong algorithms, and tokens missing
	// a subject. Kept distinct internally; the API layer collapses all three
	// kinds into "unauthenticated".
	ErrInvalid = errors.New("token invalid")
)

// Codec issues and validates HS256-signed tokens binding a subject
// identifier. It holds only the signing secret and the token lifetime; all
// operations are side-effect free.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls
// back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for subject, valid from now until now+ttl.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Validate parses and verifies a token, returning the embedded subject.
// Failures map to exactly one of ErrExpired, ErrMalformed, or ErrInvalid.
func (c *Codec) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrMalformed
	case err != nil:
		return "", ErrInvalid
	case !tkn.Valid:
		return "", ErrInvalid
	}

	if claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
