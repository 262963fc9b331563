package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"listing_pipeline/internal/domain"
)

// QualityGate holds the content rules a listing must satisfy before it may
// be published.
type QualityGate struct {
	TitleMaxLen int
	HashtagMin  int
	HashtagMax  int
}

// Check returns the reasons the snapshot fails the gate, empty when it
// passes.
func (g QualityGate) Check(snap domain.ListingSnapshot) []string {
	var reasons []string

	if snap.Title == "" {
		reasons = append(reasons, "title is empty")
	} else if n := utf8.RuneCountInString(snap.Title); n > g.TitleMaxLen {
		reasons = append(reasons, fmt.Sprintf("title length %d exceeds %d characters", n, g.TitleMaxLen))
	}

	if n := len(snap.Hashtags); n < g.HashtagMin || n > g.HashtagMax {
		reasons = append(reasons, fmt.Sprintf("hashtag count %d outside allowed range [%d, %d]", n, g.HashtagMin, g.HashtagMax))
	}

	ps := snap.PriceSuggestion
	if ps == nil || ps.Min <= 0 || ps.Suggested <= 0 || ps.Max <= 0 {
		reasons = append(reasons, "price suggestion (min/suggested/max) is missing")
	}

	if !snap.PublishReady {
		reasons = append(reasons, "draft is not flagged publish_ready")
	}

	return reasons
}

// PublishService implements the two-phase publish protocol. Phase A
// (Prepare) is pure: it validates the draft and issues a signed token that
// carries the whole listing snapshot. Phase B (Publish) reserves the
// caller's idempotency key before anything else, so the marketplace is
// invoked at most once per key.
type PublishService struct {
	drafts DraftStore
	ledger LedgerStore
	signer TokenSigner
	market Marketplace
	events EventPublisher
	gate   QualityGate
	logger *slog.Logger
	now    func() time.Time
}

func NewPublishService(
	drafts DraftStore,
	ledger LedgerStore,
	signer TokenSigner,
	market Marketplace,
	events EventPublisher,
	gate QualityGate,
	logger *slog.Logger,
) *PublishService {
	return &PublishService{
		drafts: drafts,
		ledger: ledger,
		signer: signer,
		market: market,
		events: events,
		gate:   gate,
		logger: logger.With("component", "publish"),
		now:    time.Now,
	}
}

// PrepareResult is Phase A's output: the confirm token is the only state.
type PrepareResult struct {
	ConfirmToken string
	ExpiresAt    time.Time
	Snapshot     domain.ListingSnapshot
}

// Prepare validates the draft against the quality gate and returns a signed
// confirm token. No server-side record is created; failing the gate has no
// side effects and may be retried without limit. A dry-run prepare issues a
// token without moving the draft to prepared.
func (s *PublishService) Prepare(ctx context.Context, draftID string, dryRun bool) (*PrepareResult, error) {
	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}

	snapshot := snapshotFromDraft(draft)

	if reasons := s.gate.Check(snapshot); len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}

	confirmToken, err := s.signer.Issue(snapshot)
	if err != nil {
		return nil, fmt.Errorf("sign confirm token: %w", err)
	}

	if !dryRun {
		if err := s.drafts.UpdateStatus(ctx, draftID, domain.DraftStatusPrepared); err != nil {
			return nil, err
		}
	}

	return &PrepareResult{
		ConfirmToken: confirmToken,
		ExpiresAt:    s.now().Add(s.signer.TTL()),
		Snapshot:     snapshot,
	}, nil
}

// PublishRequest is Phase B's input. The idempotency key is client-generated
// and identifies one logical publish attempt.
type PublishRequest struct {
	DraftID        string
	IdempotencyKey string
	ConfirmToken   string
	DryRun         bool
}

// PublishResult reports the recorded outcome of one attempt.
type PublishResult struct {
	Status       domain.LedgerStatus
	ListingID    string
	ListingURL   string
	ManualAction bool
	Message      string
	DryRun       bool
}

// Publish performs Phase B. The ledger reservation is the only mutual
// exclusion: a duplicate key returns ConflictError before any verification
// or external call. A failed attempt stays failed under its key forever;
// retrying requires a fresh key.
func (s *PublishService) Publish(ctx context.Context, req PublishRequest) (*PublishResult, error) {
	var reasons []string
	if req.IdempotencyKey == "" {
		reasons = append(reasons, "Idempotency-Key header is required")
	}
	if req.ConfirmToken == "" {
		reasons = append(reasons, "confirm_token is required")
	}
	if len(reasons) > 0 {
		return nil, &domain.ValidationError{Reasons: reasons}
	}

	entry := &domain.LedgerEntry{
		IdempotencyKey: req.IdempotencyKey,
		ConfirmToken:   req.ConfirmToken,
		DraftID:        req.DraftID,
		DryRun:         req.DryRun,
		CreatedAt:      s.now(),
	}
	if err := s.ledger.Reserve(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdempotencyKey) {
			return nil, &domain.ConflictError{IdempotencyKey: req.IdempotencyKey}
		}
		return nil, err
	}

	snapshot, err := s.signer.Verify(req.ConfirmToken)
	if err != nil {
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusFailed, "", err.Error())
		return nil, err
	}
	if req.DraftID != "" && snapshot.DraftID != req.DraftID {
		verr := &domain.InvalidTokenError{Reason: "token was issued for a different draft"}
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusFailed, "", verr.Error())
		return nil, verr
	}

	if req.DryRun {
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusOK, "", "")
		return &PublishResult{Status: domain.LedgerStatusOK, DryRun: true}, nil
	}

	outcome, err := s.market.PublishListing(ctx, snapshot)
	if err != nil {
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusFailed, "", err.Error())
		return nil, err
	}

	switch {
	case outcome.ManualAction:
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusFailed, "", "manual action required: "+outcome.Message)
		s.setDraftStatus(ctx, snapshot.DraftID, domain.DraftStatusError)

		s.logger.Warn("publish requires manual action",
			"draft_id", snapshot.DraftID,
			"message", outcome.Message,
		)
		return &PublishResult{
			Status:       domain.LedgerStatusFailed,
			ManualAction: true,
			Message:      outcome.Message,
		}, nil

	case outcome.OK:
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusOK, outcome.ListingURL, "")
		s.setDraftStatus(ctx, snapshot.DraftID, domain.DraftStatusPublished)
		s.emit(ctx, domain.Event{
			Type:       domain.EventListingPublished,
			DraftID:    snapshot.DraftID,
			OwnerID:    snapshot.OwnerID,
			ListingURL: outcome.ListingURL,
		})

		s.logger.Info("listing published",
			"draft_id", snapshot.DraftID,
			"listing_url", outcome.ListingURL,
		)
		return &PublishResult{
			Status:     domain.LedgerStatusOK,
			ListingID:  outcome.ListingID,
			ListingURL: outcome.ListingURL,
		}, nil

	default:
		s.completeLedger(ctx, req.IdempotencyKey, domain.LedgerStatusFailed, "", outcome.Message)
		return &PublishResult{
			Status:  domain.LedgerStatusFailed,
			Message: outcome.Message,
		}, nil
	}
}

func (s *PublishService) completeLedger(ctx context.Context, key string, status domain.LedgerStatus, listingURL, errorMessage string) {
	if err := s.ledger.Complete(ctx, key, status, listingURL, errorMessage); err != nil {
		s.logger.Error("failed to record publish outcome",
			"idempotency_key", key,
			"status", status,
			"error", err,
		)
	}
}

func (s *PublishService) setDraftStatus(ctx context.Context, draftID string, status domain.DraftStatus) {
	if err := s.drafts.UpdateStatus(ctx, draftID, status); err != nil {
		s.logger.Error("failed to update draft status",
			"draft_id", draftID,
			"status", status,
			"error", err,
		)
	}
}

func (s *PublishService) emit(ctx context.Context, event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}

// snapshotFromDraft freezes the draft's listing content. Hashtags are the
// distinct #tags appearing in the description.
func snapshotFromDraft(d *domain.Draft) domain.ListingSnapshot {
	snap := domain.ListingSnapshot{
		DraftID:      d.ID,
		OwnerID:      d.OwnerID,
		Title:        d.Title,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		Condition:    d.Condition,
		Color:        d.Color,
		Brand:        d.Brand,
		Size:         d.Size,
		Hashtags:     extractHashtags(d.Description),
		Photos:       append([]string(nil), d.Photos...),
		PublishReady: d.PublishReady,
	}

	if d.PriceMin != nil && d.PriceSuggested != nil && d.PriceMax != nil {
		snap.PriceSuggestion = &domain.PriceSuggestion{
			Min:       *d.PriceMin,
			Suggested: *d.PriceSuggested,
			Max:       *d.PriceMax,
		}
	}

	return snap
}

func extractHashtags(text string) []string {
	var tags []string
	seen := make(map[string]struct{})

	for _, field := range strings.Fields(text) {
		field = strings.TrimRight(field, ".,!?;:")
		if len(field) < 2 || !strings.HasPrefix(field, "#") {
			continue
		}
		lower := strings.ToLower(field)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		tags = append(tags, field)
	}

	return tags
}
