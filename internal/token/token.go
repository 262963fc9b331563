// Package token issues and verifies confirm tokens for the two-phase
// publish protocol. A token is a signed snapshot of the listing plus an
// issue timestamp; validity is a pure function of payload, signature and the
// current clock, so no server-side "prepared" state exists.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"listing_pipeline/internal/domain"
)

// Claims embeds the listing snapshot alongside the standard timestamps.
type Claims struct {
	Snapshot domain.ListingSnapshot `json:"snapshot"`
	jwt.RegisteredClaims
}

// Signer mints and verifies HS256-signed confirm tokens.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner creates a signer with the given secret and token TTL.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Issue signs the snapshot into an opaque confirm token valid for the TTL.
func (s *Signer) Issue(snapshot domain.ListingSnapshot) (string, error) {
	issuedAt := s.now()

	claims := Claims{
		Snapshot: snapshot,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and age and returns the embedded snapshot.
// Stale tokens yield ExpiredTokenError, anything else InvalidTokenError.
func (s *Signer) Verify(tokenString string) (domain.ListingSnapshot, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			issuedAt := time.Time{}
			if claims.IssuedAt != nil {
				issuedAt = claims.IssuedAt.Time
			}
			return domain.ListingSnapshot{}, &domain.ExpiredTokenError{IssuedAt: issuedAt}
		}
		return domain.ListingSnapshot{}, &domain.InvalidTokenError{Reason: err.Error()}
	}
	if !parsed.Valid {
		return domain.ListingSnapshot{}, &domain.InvalidTokenError{Reason: "token rejected"}
	}

	return claims.Snapshot, nil
}
