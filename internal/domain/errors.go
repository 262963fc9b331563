package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrDraftNotFound = errors.New("draft not found")
	ErrEntryNotFound = errors.New("ledger entry not found")
	// ErrDuplicateIdempotencyKey is returned by the ledger store when the
	// atomic reservation insert hits the uniqueness constraint.
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already reserved")
	ErrQuotaExceeded           = errors.New("storage quota exceeded")
)

// ValidationError reports quality-gate failures at prepare time. It carries
// no side effects and is safely retryable after the draft is fixed.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "listing not ready: " + strings.Join(e.Reasons, "; ")
}

// ConflictError signals a duplicate publish attempt: the idempotency key is
// already reserved, so no external call was made for this request.
type ConflictError struct {
	IdempotencyKey string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("publish already attempted with idempotency key %q", e.IdempotencyKey)
}

// ExpiredTokenError is returned when a confirm token's age exceeds its TTL.
type ExpiredTokenError struct {
	IssuedAt time.Time
}

func (e *ExpiredTokenError) Error() string {
	return fmt.Sprintf("confirm token expired (issued at %s)", e.IssuedAt.Format(time.RFC3339))
}

// InvalidTokenError is returned when a confirm token fails signature or
// payload verification.
type InvalidTokenError struct {
	Reason string
}

func (e *InvalidTokenError) Error() string {
	return "invalid confirm token: " + e.Reason
}

// ExternalServiceError wraps transport or protocol failures from the
// classifier, marketplace or quota services.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// StorageError wraps database failures. Callers may retry the operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
