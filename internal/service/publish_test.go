package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"listing_pipeline/internal/domain"
	"listing_pipeline/internal/service/mocks"
)

type PublishServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	drafts *mocks.MockDraftStore
	ledger *mocks.MockLedgerStore
	signer *mocks.MockTokenSigner
	market *mocks.MockMarketplace
	events *mocks.MockEventPublisher

	service *PublishService
	now     time.Time
}

func (s *PublishServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.drafts = mocks.NewMockDraftStore(s.ctrl)
	s.ledger = mocks.NewMockLedgerStore(s.ctrl)
	s.signer = mocks.NewMockTokenSigner(s.ctrl)
	s.market = mocks.NewMockMarketplace(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)

	gate := QualityGate{TitleMaxLen: 70, HashtagMin: 3, HashtagMax: 5}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewPublishService(s.drafts, s.ledger, s.signer, s.market, s.events, gate, logger)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *PublishServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPublishServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PublishServiceTestSuite))
}

func fptr(v float64) *float64 { return &v }

func readyDraft() *domain.Draft {
	return &domain.Draft{
		ID:             "draft-1",
		OwnerID:        "owner-1",
		Title:          "Levi's 501 jeans, dark wash",
		Description:    "Classic fit. #levis #jeans #vintage",
		Price:          35,
		Category:       "jeans",
		Brand:          "Levi's",
		Photos:         []string{"p1.jpg", "p2.jpg"},
		Status:         domain.DraftStatusReady,
		PriceMin:       fptr(28),
		PriceSuggested: fptr(35),
		PriceMax:       fptr(42),
		PublishReady:   true,
	}
}

func readySnapshot() domain.ListingSnapshot {
	return snapshotFromDraft(readyDraft())
}

func (s *PublishServiceTestSuite) TestPrepare_IssuesToken() {
	ctx := context.Background()
	draft := readyDraft()

	s.drafts.EXPECT().GetByID(ctx, "draft-1").Return(draft, nil)

	var signed domain.ListingSnapshot
	s.signer.EXPECT().Issue(gomock.Any()).DoAndReturn(
		func(snap domain.ListingSnapshot) (string, error) {
			signed = snap
			return "token-abc", nil
		},
	)
	s.signer.EXPECT().TTL().Return(30 * time.Minute)
	s.drafts.EXPECT().UpdateStatus(ctx, "draft-1", domain.DraftStatusPrepared).Return(nil)

	result, err := s.service.Prepare(ctx, "draft-1", false)

	s.NoError(err)
	s.Equal("token-abc", result.ConfirmToken)
	s.Equal(s.now.Add(30*time.Minute), result.ExpiresAt)
	s.Equal("draft-1", signed.DraftID)
	s.Equal([]string{"#levis", "#jeans", "#vintage"}, signed.Hashtags)
	s.NotNil(signed.PriceSuggestion)
	s.Equal(35.0, signed.PriceSuggestion.Suggested)
}

func (s *PublishServiceTestSuite) TestPrepare_DryRunSkipsStatusChange() {
	ctx := context.Background()

	s.drafts.EXPECT().GetByID(ctx, "draft-1").Return(readyDraft(), nil)
	s.signer.EXPECT().Issue(gomock.Any()).Return("token-abc", nil)
	s.signer.EXPECT().TTL().Return(30 * time.Minute)

	result, err := s.service.Prepare(ctx, "draft-1", true)

	s.NoError(err)
	s.Equal("token-abc", result.ConfirmToken)
}

func (s *PublishServiceTestSuite) TestPrepare_GateCollectsAllReasons() {
	ctx := context.Background()

	draft := readyDraft()
	draft.Description = "No tags here at all #one"
	draft.PriceSuggested = nil
	draft.PublishReady = false

	s.drafts.EXPECT().GetByID(ctx, "draft-1").Return(draft, nil)

	_, err := s.service.Prepare(ctx, "draft-1", false)

	var verr *domain.ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(verr.Reasons, "hashtag count 1 outside allowed range [3, 5]")
	s.Contains(verr.Reasons, "price suggestion (min/suggested/max) is missing")
	s.Contains(verr.Reasons, "draft is not flagged publish_ready")
}

func (s *PublishServiceTestSuite) TestPrepare_TitleTooLong() {
	ctx := context.Background()

	draft := readyDraft()
	for len(draft.Title) <= 70 {
		draft.Title += " extra"
	}

	s.drafts.EXPECT().GetByID(ctx, "draft-1").Return(draft, nil)

	_, err := s.service.Prepare(ctx, "draft-1", false)

	var verr *domain.ValidationError
	s.ErrorAs(err, &verr)
	s.NotEmpty(verr.Reasons)
}

func (s *PublishServiceTestSuite) TestPrepare_DraftNotFound() {
	ctx := context.Background()

	s.drafts.EXPECT().GetByID(ctx, "missing").Return(nil, domain.ErrDraftNotFound)

	_, err := s.service.Prepare(ctx, "missing", false)

	s.ErrorIs(err, domain.ErrDraftNotFound)
}

func (s *PublishServiceTestSuite) TestPublish_Succeeds() {
	ctx := context.Background()
	snapshot := readySnapshot()

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.LedgerEntry) error {
			s.Equal("key-1", e.IdempotencyKey)
			s.Equal("token-abc", e.ConfirmToken)
			s.Equal("draft-1", e.DraftID)
			s.False(e.DryRun)
			return nil
		},
	)
	s.signer.EXPECT().Verify("token-abc").Return(snapshot, nil)
	s.market.EXPECT().PublishListing(ctx, snapshot).Return(domain.PublishOutcome{
		OK:         true,
		ListingID:  "listing-42",
		ListingURL: "https://market.example/listings/42",
	}, nil)
	s.ledger.EXPECT().Complete(ctx, "key-1", domain.LedgerStatusOK, "https://market.example/listings/42", "").Return(nil)
	s.drafts.EXPECT().UpdateStatus(ctx, "draft-1", domain.DraftStatusPublished).Return(nil)
	s.events.EXPECT().Publish(ctx, domain.Event{
		Type:       domain.EventListingPublished,
		DraftID:    "draft-1",
		OwnerID:    "owner-1",
		ListingURL: "https://market.example/listings/42",
	}).Return(nil)

	result, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "draft-1",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
	})

	s.NoError(err)
	s.Equal(domain.LedgerStatusOK, result.Status)
	s.Equal("listing-42", result.ListingID)
	s.Equal("https://market.example/listings/42", result.ListingURL)
}

func (s *PublishServiceTestSuite) TestPublish_DuplicateKeyNeverHitsMarketplace() {
	ctx := context.Background()

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(domain.ErrDuplicateIdempotencyKey)

	_, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "draft-1",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
	})

	var cerr *domain.ConflictError
	s.ErrorAs(err, &cerr)
	s.Equal("key-1", cerr.IdempotencyKey)
}

func (s *PublishServiceTestSuite) TestPublish_FreshKeyGetsFreshAttempt() {
	ctx := context.Background()
	snapshot := readySnapshot()

	for _, key := range []string{"key-1", "key-2"} {
		s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(nil)
		s.signer.EXPECT().Verify("token-abc").Return(snapshot, nil)
		s.market.EXPECT().PublishListing(ctx, snapshot).Return(domain.PublishOutcome{
			Message: "upstream rejected",
		}, nil)
		s.ledger.EXPECT().Complete(ctx, key, domain.LedgerStatusFailed, "", "upstream rejected").Return(nil)
	}

	for _, key := range []string{"key-1", "key-2"} {
		result, err := s.service.Publish(ctx, PublishRequest{
			DraftID:        "draft-1",
			IdempotencyKey: key,
			ConfirmToken:   "token-abc",
		})
		s.NoError(err)
		s.Equal(domain.LedgerStatusFailed, result.Status)
		s.Equal("upstream rejected", result.Message)
	}
}

func (s *PublishServiceTestSuite) TestPublish_ExpiredTokenRecordsFailure() {
	ctx := context.Background()
	issuedAt := s.now.Add(-time.Hour)

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(nil)
	s.signer.EXPECT().Verify("token-abc").Return(domain.ListingSnapshot{}, &domain.ExpiredTokenError{IssuedAt: issuedAt})
	s.ledger.EXPECT().Complete(ctx, "key-1", domain.LedgerStatusFailed, "", gomock.Any()).Return(nil)

	_, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "draft-1",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
	})

	var terr *domain.ExpiredTokenError
	s.ErrorAs(err, &terr)
	s.Equal(issuedAt, terr.IssuedAt)
}

func (s *PublishServiceTestSuite) TestPublish_TokenForDifferentDraft() {
	ctx := context.Background()
	snapshot := readySnapshot()

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(nil)
	s.signer.EXPECT().Verify("token-abc").Return(snapshot, nil)
	s.ledger.EXPECT().Complete(ctx, "key-1", domain.LedgerStatusFailed, "", gomock.Any()).Return(nil)

	_, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "another-draft",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
	})

	var terr *domain.InvalidTokenError
	s.ErrorAs(err, &terr)
}

func (s *PublishServiceTestSuite) TestPublish_DryRunSkipsMarketplace() {
	ctx := context.Background()

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(nil)
	s.signer.EXPECT().Verify("token-abc").Return(readySnapshot(), nil)
	s.ledger.EXPECT().Complete(ctx, "key-1", domain.LedgerStatusOK, "", "").Return(nil)

	result, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "draft-1",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
		DryRun:         true,
	})

	s.NoError(err)
	s.True(result.DryRun)
	s.Equal(domain.LedgerStatusOK, result.Status)
}

func (s *PublishServiceTestSuite) TestPublish_ManualActionRequired() {
	ctx := context.Background()
	snapshot := readySnapshot()

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(nil)
	s.signer.EXPECT().Verify("token-abc").Return(snapshot, nil)
	s.market.EXPECT().PublishListing(ctx, snapshot).Return(domain.PublishOutcome{
		ManualAction: true,
		Message:      "captcha challenge",
	}, nil)
	s.ledger.EXPECT().Complete(ctx, "key-1", domain.LedgerStatusFailed, "", "manual action required: captcha challenge").Return(nil)
	s.drafts.EXPECT().UpdateStatus(ctx, "draft-1", domain.DraftStatusError).Return(nil)

	result, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "draft-1",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
	})

	s.NoError(err)
	s.True(result.ManualAction)
	s.Equal(domain.LedgerStatusFailed, result.Status)
	s.Equal("captcha challenge", result.Message)
}

func (s *PublishServiceTestSuite) TestPublish_MarketplaceErrorRecordsFailure() {
	ctx := context.Background()
	snapshot := readySnapshot()
	marketErr := errors.New("connect: connection refused")

	s.ledger.EXPECT().Reserve(ctx, gomock.Any()).Return(nil)
	s.signer.EXPECT().Verify("token-abc").Return(snapshot, nil)
	s.market.EXPECT().PublishListing(ctx, snapshot).Return(domain.PublishOutcome{}, marketErr)
	s.ledger.EXPECT().Complete(ctx, "key-1", domain.LedgerStatusFailed, "", marketErr.Error()).Return(nil)

	_, err := s.service.Publish(ctx, PublishRequest{
		DraftID:        "draft-1",
		IdempotencyKey: "key-1",
		ConfirmToken:   "token-abc",
	})

	s.ErrorIs(err, marketErr)
}

func (s *PublishServiceTestSuite) TestPublish_RequiresKeyAndToken() {
	_, err := s.service.Publish(context.Background(), PublishRequest{DraftID: "draft-1"})

	var verr *domain.ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(verr.Reasons, "Idempotency-Key header is required")
	s.Contains(verr.Reasons, "confirm_token is required")
}

func (s *PublishServiceTestSuite) TestExtractHashtags() {
	tags := extractHashtags("Great coat! #wool #Winter, #wool #warm. # not-a-tag")

	s.Equal([]string{"#wool", "#Winter", "#warm"}, tags)
}
