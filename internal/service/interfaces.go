package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"listing_pipeline/internal/domain"
)

type DraftStore interface {
	AcquireMergeLock(ctx context.Context, ownerID, brand, category string) error
	FindMergeCandidates(ctx context.Context, ownerID, brand, category string) ([]domain.Draft, error)
	Insert(ctx context.Context, d *domain.Draft) error
	UpdateMergedPhotos(ctx context.Context, id string, photos []string, updatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Draft, error)
	UpdateContent(ctx context.Context, d *domain.Draft) error
	UpdateStatus(ctx context.Context, id string, status domain.DraftStatus) error
}

type LedgerStore interface {
	Reserve(ctx context.Context, e *domain.LedgerEntry) error
	Complete(ctx context.Context, key string, status domain.LedgerStatus, listingURL, errorMessage string) error
	GetByKey(ctx context.Context, key string) (*domain.LedgerEntry, error)
}

type JobRegistry interface {
	Create(ownerID string, totalPhotos int) string
	Start(jobID string) error
	UpdateProgress(jobID string, percent float64, phase string) error
	SetTotalItems(jobID string, total int) error
	RecordItemCompleted(jobID, draftID string) error
	RecordItemFailed(jobID, message string) error
	RecordError(jobID, message string) error
	MarkCompleted(jobID string, draftIDs []string) error
	MarkFailed(jobID, message string) error
	Get(jobID string) (domain.Job, error)
}

type Grouper interface {
	GroupAndClassify(ctx context.Context, photoPaths []string, styleHint string, progress func(done, total int)) ([]domain.ItemDescriptor, []string)
}

type DraftSaver interface {
	SaveDraft(ctx context.Context, candidate *domain.Draft) (*domain.Draft, bool, error)
}

type Deduplicator interface {
	BestTitleMatch(title string, candidates []domain.Draft) (int, float64)
	MergePhotos(existing, incoming []string) []string
}

type QuotaChecker interface {
	CheckCapacity(ctx context.Context, ownerID string, photoCount int) error
}

type Marketplace interface {
	PublishListing(ctx context.Context, snapshot domain.ListingSnapshot) (domain.PublishOutcome, error)
}

type TokenSigner interface {
	Issue(snapshot domain.ListingSnapshot) (string, error)
	Verify(tokenString string) (domain.ListingSnapshot, error)
	TTL() time.Duration
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}
