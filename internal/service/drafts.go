package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"listing_pipeline/internal/domain"
)

// DraftService owns draft writes. Saving is merge-on-duplicate: a candidate
// that fuzzy-matches an existing draft for the same (owner, brand, category)
// is folded into that draft instead of creating a new row.
type DraftService struct {
	store  DraftStore
	tx     TransactionManager
	dedupe Deduplicator
	logger *slog.Logger
	now    func() time.Time
}

func NewDraftService(store DraftStore, tx TransactionManager, dedupe Deduplicator, logger *slog.Logger) *DraftService {
	return &DraftService{
		store:  store,
		tx:     tx,
		dedupe: dedupe,
		logger: logger.With("component", "drafts"),
		now:    time.Now,
	}
}

// SaveDraft persists the candidate, merging into an existing near-duplicate
// when one is found. The returned draft's ID is authoritative and may differ
// from the candidate's: a concurrent merge may have resolved to an existing
// row. The boolean reports whether a merge happened.
//
// The lookup-then-write runs in one transaction under an advisory lock on
// the merge key, so two concurrent saves of the same physical item cannot
// both miss the duplicate scan and insert twice.
func (s *DraftService) SaveDraft(ctx context.Context, candidate *domain.Draft) (*domain.Draft, bool, error) {
	if candidate.OwnerID == "" {
		return nil, false, &domain.ValidationError{Reasons: []string{"owner_id is required"}}
	}

	var resolved *domain.Draft
	var merged bool

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.store.AcquireMergeLock(txCtx, candidate.OwnerID, candidate.Brand, candidate.Category); err != nil {
			return err
		}

		candidates, err := s.store.FindMergeCandidates(txCtx, candidate.OwnerID, candidate.Brand, candidate.Category)
		if err != nil {
			return err
		}

		idx, score := s.dedupe.BestTitleMatch(candidate.Title, candidates)
		if idx >= 0 {
			existing := candidates[idx]
			photos := s.dedupe.MergePhotos(existing.Photos, candidate.Photos)
			updatedAt := s.now()

			if err := s.store.UpdateMergedPhotos(txCtx, existing.ID, photos, updatedAt); err != nil {
				return err
			}

			existing.Photos = photos
			existing.UpdatedAt = updatedAt
			resolved = &existing
			merged = true

			s.logger.Debug("merged duplicate draft",
				"draft_id", existing.ID,
				"title", candidate.Title,
				"similarity", score,
				"photos", len(photos),
			)
			return nil
		}

		if candidate.ID == "" {
			candidate.ID = uuid.NewString()
		}
		if candidate.Status == "" {
			candidate.Status = domain.DraftStatusPending
		}
		now := s.now()
		if candidate.CreatedAt.IsZero() {
			candidate.CreatedAt = now
		}
		candidate.UpdatedAt = now

		if err := s.store.Insert(txCtx, candidate); err != nil {
			return err
		}
		resolved = candidate
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("save draft: %w", err)
	}

	return resolved, merged, nil
}

// Get returns one draft.
func (s *DraftService) Get(ctx context.Context, id string) (*domain.Draft, error) {
	return s.store.GetByID(ctx, id)
}

// DraftEdit carries a partial user edit; nil fields are left untouched.
type DraftEdit struct {
	Title            *string
	Description      *string
	Price            *float64
	Category         *string
	Condition        *string
	Color            *string
	Brand            *string
	Size             *string
	Photos           *[]string
	PriceMin         *float64
	PriceSuggested   *float64
	PriceMax         *float64
	PublishReady     *bool
	ContentValidated *bool
	PhotosValidated  *bool
}

// ApplyEdit applies a user edit to a draft and returns the updated record.
// Published drafts are immutable.
func (s *DraftService) ApplyEdit(ctx context.Context, id string, edit DraftEdit) (*domain.Draft, error) {
	draft, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if draft.Status == domain.DraftStatusPublished {
		return nil, &domain.ValidationError{Reasons: []string{"draft is already published"}}
	}

	if edit.Title != nil {
		draft.Title = *edit.Title
	}
	if edit.Description != nil {
		draft.Description = *edit.Description
	}
	if edit.Price != nil {
		draft.Price = *edit.Price
	}
	if edit.Category != nil {
		draft.Category = *edit.Category
	}
	if edit.Condition != nil {
		draft.Condition = *edit.Condition
	}
	if edit.Color != nil {
		draft.Color = *edit.Color
	}
	if edit.Brand != nil {
		draft.Brand = *edit.Brand
	}
	if edit.Size != nil {
		draft.Size = *edit.Size
	}
	if edit.Photos != nil {
		draft.Photos = *edit.Photos
	}
	if edit.PriceMin != nil {
		draft.PriceMin = edit.PriceMin
	}
	if edit.PriceSuggested != nil {
		draft.PriceSuggested = edit.PriceSuggested
	}
	if edit.PriceMax != nil {
		draft.PriceMax = edit.PriceMax
	}
	if edit.PublishReady != nil {
		draft.PublishReady = *edit.PublishReady
	}
	if edit.ContentValidated != nil {
		draft.ContentValidated = *edit.ContentValidated
	}
	if edit.PhotosValidated != nil {
		draft.PhotosValidated = *edit.PhotosValidated
	}
	draft.UpdatedAt = s.now()

	if err := s.store.UpdateContent(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}
