package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"listing_pipeline/internal/domain"
)

// LedgerStore persists publish attempts. The primary-key constraint on
// idempotency_key is what makes Reserve atomic under concurrent requests;
// no application-level locking is involved.
type LedgerStore struct {
	db *sqlx.DB
}

func NewLedgerStore(db *sqlx.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

type ledgerRow struct {
	IdempotencyKey string     `db:"idempotency_key"`
	ConfirmToken   string     `db:"confirm_token"`
	DraftID        string     `db:"draft_id"`
	DryRun         bool       `db:"dry_run"`
	Status         string     `db:"status"`
	ListingURL     *string    `db:"listing_url"`
	ErrorMessage   *string    `db:"error_message"`
	CreatedAt      time.Time  `db:"created_at"`
	CompletedAt    *time.Time `db:"completed_at"`
}

func (r ledgerRow) toDomain() domain.LedgerEntry {
	return domain.LedgerEntry{
		IdempotencyKey: r.IdempotencyKey,
		ConfirmToken:   r.ConfirmToken,
		DraftID:        r.DraftID,
		DryRun:         r.DryRun,
		Status:         domain.LedgerStatus(r.Status),
		ListingURL:     r.ListingURL,
		ErrorMessage:   r.ErrorMessage,
		CreatedAt:      r.CreatedAt,
		CompletedAt:    r.CompletedAt,
	}
}

// Reserve atomically inserts a reserved entry for the idempotency key.
// ErrDuplicateIdempotencyKey means another attempt holds the key, whatever
// its eventual outcome; the caller must not proceed to any external call.
func (s *LedgerStore) Reserve(ctx context.Context, e *domain.LedgerEntry) error {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO publish_ledger (
			idempotency_key, confirm_token, draft_id, dry_run, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (idempotency_key) DO NOTHING`,
		e.IdempotencyKey,
		e.ConfirmToken,
		e.DraftID,
		e.DryRun,
		string(domain.LedgerStatusReserved),
		e.CreatedAt,
	)
	if err != nil {
		return &domain.StorageError{Op: "reserve publish attempt", Err: err}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return &domain.StorageError{Op: "reserve publish attempt", Err: err}
	}
	if n == 0 {
		return domain.ErrDuplicateIdempotencyKey
	}

	e.Status = domain.LedgerStatusReserved
	return nil
}

// Complete records the attempt's outcome. The status guard ensures the row
// is written at most once after the external call: a second Complete for
// the same key is a no-op.
func (s *LedgerStore) Complete(ctx context.Context, key string, status domain.LedgerStatus, listingURL, errorMessage string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE publish_ledger SET
			status = $2,
			listing_url = NULLIF($3, ''),
			error_message = NULLIF($4, ''),
			completed_at = now()
		WHERE idempotency_key = $1 AND status = $5`,
		key, string(status), listingURL, errorMessage,
		string(domain.LedgerStatusReserved),
	)
	if err != nil {
		return &domain.StorageError{Op: "complete publish attempt", Err: err}
	}
	return nil
}

// GetByKey fetches one ledger entry.
func (s *LedgerStore) GetByKey(ctx context.Context, key string) (*domain.LedgerEntry, error) {
	var row ledgerRow
	err := s.db.GetContext(ctx, &row, `
		SELECT idempotency_key, confirm_token, draft_id, dry_run, status,
		       listing_url, error_message, created_at, completed_at
		FROM publish_ledger
		WHERE idempotency_key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "get ledger entry", Err: err}
	}

	e := row.toDomain()
	return &e, nil
}
