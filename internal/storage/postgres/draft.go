package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"listing_pipeline/internal/domain"
)

// DraftStore persists listing drafts. All methods run on the transaction
// bound to the context when one is present.
type DraftStore struct {
	db *sqlx.DB
}

func NewDraftStore(db *sqlx.DB) *DraftStore {
	return &DraftStore{db: db}
}

type draftRow struct {
	ID               string         `db:"id"`
	OwnerID          string         `db:"owner_id"`
	Title            string         `db:"title"`
	Description      string         `db:"description"`
	Price            float64        `db:"price"`
	Category         string         `db:"category"`
	Condition        string         `db:"condition"`
	Color            string         `db:"color"`
	Brand            string         `db:"brand"`
	Size             string         `db:"size"`
	Photos           pq.StringArray `db:"photos"`
	Status           string         `db:"status"`
	Confidence       float64        `db:"confidence"`
	PriceMin         *float64       `db:"price_min"`
	PriceSuggested   *float64       `db:"price_suggested"`
	PriceMax         *float64       `db:"price_max"`
	PublishReady     bool           `db:"publish_ready"`
	ContentValidated bool           `db:"content_validated"`
	PhotosValidated  bool           `db:"photos_validated"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r draftRow) toDomain() domain.Draft {
	return domain.Draft{
		ID:               r.ID,
		OwnerID:          r.OwnerID,
		Title:            r.Title,
		Description:      r.Description,
		Price:            r.Price,
		Category:         r.Category,
		Condition:        r.Condition,
		Color:            r.Color,
		Brand:            r.Brand,
		Size:             r.Size,
		Photos:           []string(r.Photos),
		Status:           domain.DraftStatus(r.Status),
		Confidence:       r.Confidence,
		PriceMin:         r.PriceMin,
		PriceSuggested:   r.PriceSuggested,
		PriceMax:         r.PriceMax,
		PublishReady:     r.PublishReady,
		ContentValidated: r.ContentValidated,
		PhotosValidated:  r.PhotosValidated,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

const draftColumns = `
	id, owner_id, title, description, price, category, condition, color,
	brand, size, photos, status, confidence, price_min, price_suggested,
	price_max, publish_ready, content_validated, photos_validated,
	created_at, updated_at`

// AcquireMergeLock takes a transaction-scoped advisory lock on the merge
// key so two concurrent saves for the same (owner, brand, category) cannot
// both pass the "no duplicate found" scan. Must run inside a transaction.
func (s *DraftStore) AcquireMergeLock(ctx context.Context, ownerID, brand, category string) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`,
		ownerID+"\x1f"+brand+"\x1f"+category,
	)
	if err != nil {
		return &domain.StorageError{Op: "acquire merge lock", Err: err}
	}
	return nil
}

// FindMergeCandidates returns mergeable drafts for the lookup key: same
// owner, brand and category, status pending or ready.
func (s *DraftStore) FindMergeCandidates(ctx context.Context, ownerID, brand, category string) ([]domain.Draft, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		SELECT` + draftColumns + `
		FROM drafts
		WHERE owner_id = $1 AND brand = $2 AND category = $3
		  AND status IN ('pending', 'ready')
		ORDER BY created_at`

	var rows []draftRow
	if err := sqlx.SelectContext(ctx, exec, &rows, query, ownerID, brand, category); err != nil {
		return nil, &domain.StorageError{Op: "find merge candidates", Err: err}
	}

	drafts := make([]domain.Draft, 0, len(rows))
	for _, r := range rows {
		drafts = append(drafts, r.toDomain())
	}
	return drafts, nil
}

// Insert writes a new draft row.
func (s *DraftStore) Insert(ctx context.Context, d *domain.Draft) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx, `
		INSERT INTO drafts (
			id, owner_id, title, description, price, category, condition,
			color, brand, size, photos, status, confidence, price_min,
			price_suggested, price_max, publish_ready, content_validated,
			photos_validated, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21
		)`,
		d.ID, d.OwnerID, d.Title, d.Description, d.Price, d.Category,
		d.Condition, d.Color, d.Brand, d.Size, pq.Array(d.Photos),
		string(d.Status), d.Confidence, d.PriceMin, d.PriceSuggested,
		d.PriceMax, d.PublishReady, d.ContentValidated, d.PhotosValidated,
		d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return &domain.StorageError{Op: "insert draft", Err: err}
	}
	return nil
}

// UpdateMergedPhotos persists the merged photo list on an existing draft and
// bumps updated_at. Used by merge-on-duplicate; no new row is created.
func (s *DraftStore) UpdateMergedPhotos(ctx context.Context, id string, photos []string, updatedAt time.Time) error {
	exec := GetExecutor(ctx, s.db)

	res, err := exec.ExecContext(ctx,
		`UPDATE drafts SET photos = $2, updated_at = $3 WHERE id = $1`,
		id, pq.Array(photos), updatedAt,
	)
	if err != nil {
		return &domain.StorageError{Op: "update merged photos", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

// GetByID fetches one draft.
func (s *DraftStore) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	exec := GetExecutor(ctx, s.db)

	var row draftRow
	err := sqlx.GetContext(ctx, exec, &row,
		`SELECT`+draftColumns+` FROM drafts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDraftNotFound
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "get draft", Err: err}
	}

	d := row.toDomain()
	return &d, nil
}

// UpdateContent persists user edits to listing fields and readiness flags.
func (s *DraftStore) UpdateContent(ctx context.Context, d *domain.Draft) error {
	exec := GetExecutor(ctx, s.db)

	res, err := exec.ExecContext(ctx, `
		UPDATE drafts SET
			title = $2,
			description = $3,
			price = $4,
			category = $5,
			condition = $6,
			color = $7,
			brand = $8,
			size = $9,
			photos = $10,
			price_min = $11,
			price_suggested = $12,
			price_max = $13,
			publish_ready = $14,
			content_validated = $15,
			photos_validated = $16,
			updated_at = $17
		WHERE id = $1`,
		d.ID, d.Title, d.Description, d.Price, d.Category, d.Condition,
		d.Color, d.Brand, d.Size, pq.Array(d.Photos), d.PriceMin,
		d.PriceSuggested, d.PriceMax, d.PublishReady, d.ContentValidated,
		d.PhotosValidated, d.UpdatedAt,
	)
	if err != nil {
		return &domain.StorageError{Op: "update draft", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

// UpdateStatus transitions the draft's publish status.
func (s *DraftStore) UpdateStatus(ctx context.Context, id string, status domain.DraftStatus) error {
	exec := GetExecutor(ctx, s.db)

	res, err := exec.ExecContext(ctx,
		`UPDATE drafts SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return &domain.StorageError{Op: "update draft status", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}
