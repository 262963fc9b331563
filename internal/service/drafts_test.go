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

type DraftServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store  *mocks.MockDraftStore
	tx     *mocks.MockTransactionManager
	dedupe *mocks.MockDeduplicator

	service *DraftService
	now     time.Time
}

func (s *DraftServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.store = mocks.NewMockDraftStore(s.ctrl)
	s.tx = mocks.NewMockTransactionManager(s.ctrl)
	s.dedupe = mocks.NewMockDeduplicator(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewDraftService(s.store, s.tx, s.dedupe, logger)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *DraftServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDraftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DraftServiceTestSuite))
}

func (s *DraftServiceTestSuite) passthroughTx(ctx context.Context) {
	s.tx.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *DraftServiceTestSuite) TestSaveDraft_MergesIntoExisting() {
	ctx := context.Background()

	existing := domain.Draft{
		ID:       "draft-1",
		OwnerID:  "owner-1",
		Title:    "Levi's 501 jeans blue",
		Brand:    "Levi's",
		Category: "jeans",
		Photos:   []string{"p1.jpg", "p2.jpg"},
		Status:   domain.DraftStatusReady,
	}
	candidate := &domain.Draft{
		OwnerID:  "owner-1",
		Title:    "Levis 501 jeans, blue",
		Brand:    "Levi's",
		Category: "jeans",
		Photos:   []string{"p2.jpg", "p3.jpg"},
	}
	merged := []string{"p1.jpg", "p2.jpg", "p3.jpg"}

	s.passthroughTx(ctx)
	s.store.EXPECT().AcquireMergeLock(ctx, "owner-1", "Levi's", "jeans").Return(nil)
	s.store.EXPECT().FindMergeCandidates(ctx, "owner-1", "Levi's", "jeans").Return([]domain.Draft{existing}, nil)
	s.dedupe.EXPECT().BestTitleMatch(candidate.Title, []domain.Draft{existing}).Return(0, 91.3)
	s.dedupe.EXPECT().MergePhotos(existing.Photos, candidate.Photos).Return(merged)
	s.store.EXPECT().UpdateMergedPhotos(ctx, "draft-1", merged, s.now).Return(nil)

	resolved, wasMerged, err := s.service.SaveDraft(ctx, candidate)

	s.NoError(err)
	s.True(wasMerged)
	s.Equal("draft-1", resolved.ID)
	s.Equal(merged, resolved.Photos)
	s.Equal(s.now, resolved.UpdatedAt)
}

func (s *DraftServiceTestSuite) TestSaveDraft_InsertsWhenNoMatch() {
	ctx := context.Background()

	candidate := &domain.Draft{
		OwnerID:  "owner-1",
		Title:    "Nike Air Force 1",
		Brand:    "Nike",
		Category: "sneakers",
		Photos:   []string{"p1.jpg"},
	}

	s.passthroughTx(ctx)
	s.store.EXPECT().AcquireMergeLock(ctx, "owner-1", "Nike", "sneakers").Return(nil)
	s.store.EXPECT().FindMergeCandidates(ctx, "owner-1", "Nike", "sneakers").Return(nil, nil)
	s.dedupe.EXPECT().BestTitleMatch(candidate.Title, nil).Return(-1, 42.0)
	s.store.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.Draft) error {
			s.NotEmpty(d.ID)
			s.Equal(domain.DraftStatusPending, d.Status)
			s.Equal(s.now, d.CreatedAt)
			s.Equal(s.now, d.UpdatedAt)
			return nil
		},
	)

	resolved, wasMerged, err := s.service.SaveDraft(ctx, candidate)

	s.NoError(err)
	s.False(wasMerged)
	s.NotEmpty(resolved.ID)
	s.Equal(candidate.ID, resolved.ID)
}

func (s *DraftServiceTestSuite) TestSaveDraft_KeepsExplicitStatus() {
	ctx := context.Background()

	candidate := &domain.Draft{
		OwnerID: "owner-1",
		Title:   "Wool coat",
		Status:  domain.DraftStatusReady,
	}

	s.passthroughTx(ctx)
	s.store.EXPECT().AcquireMergeLock(ctx, "owner-1", "", "").Return(nil)
	s.store.EXPECT().FindMergeCandidates(ctx, "owner-1", "", "").Return(nil, nil)
	s.dedupe.EXPECT().BestTitleMatch(candidate.Title, nil).Return(-1, 0.0)
	s.store.EXPECT().Insert(ctx, gomock.Any()).Return(nil)

	resolved, _, err := s.service.SaveDraft(ctx, candidate)

	s.NoError(err)
	s.Equal(domain.DraftStatusReady, resolved.Status)
}

func (s *DraftServiceTestSuite) TestSaveDraft_MissingOwner() {
	_, _, err := s.service.SaveDraft(context.Background(), &domain.Draft{Title: "no owner"})

	var verr *domain.ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(verr.Reasons, "owner_id is required")
}

func (s *DraftServiceTestSuite) TestSaveDraft_StoreFailure() {
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	s.passthroughTx(ctx)
	s.store.EXPECT().AcquireMergeLock(ctx, "owner-1", "", "").Return(nil)
	s.store.EXPECT().FindMergeCandidates(ctx, "owner-1", "", "").Return(nil, storeErr)

	_, _, err := s.service.SaveDraft(ctx, &domain.Draft{OwnerID: "owner-1", Title: "x"})

	s.ErrorIs(err, storeErr)
	s.Contains(err.Error(), "save draft")
}

func (s *DraftServiceTestSuite) TestApplyEdit_AppliesPartialEdit() {
	ctx := context.Background()

	draft := &domain.Draft{
		ID:          "draft-1",
		OwnerID:     "owner-1",
		Title:       "old title",
		Description: "old description",
		Price:       10,
		Status:      domain.DraftStatusPending,
	}

	newTitle := "new title"
	priceMin := 8.0
	ready := true

	s.store.EXPECT().GetByID(ctx, "draft-1").Return(draft, nil)
	s.store.EXPECT().UpdateContent(ctx, gomock.Any()).Return(nil)

	updated, err := s.service.ApplyEdit(ctx, "draft-1", DraftEdit{
		Title:        &newTitle,
		PriceMin:     &priceMin,
		PublishReady: &ready,
	})

	s.NoError(err)
	s.Equal("new title", updated.Title)
	s.Equal("old description", updated.Description)
	s.Equal(10.0, updated.Price)
	s.NotNil(updated.PriceMin)
	s.Equal(8.0, *updated.PriceMin)
	s.True(updated.PublishReady)
	s.Equal(s.now, updated.UpdatedAt)
}

func (s *DraftServiceTestSuite) TestApplyEdit_PublishedIsImmutable() {
	ctx := context.Background()

	s.store.EXPECT().GetByID(ctx, "draft-1").Return(&domain.Draft{
		ID:     "draft-1",
		Status: domain.DraftStatusPublished,
	}, nil)

	newTitle := "nope"
	_, err := s.service.ApplyEdit(ctx, "draft-1", DraftEdit{Title: &newTitle})

	var verr *domain.ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(verr.Reasons, "draft is already published")
}

func (s *DraftServiceTestSuite) TestApplyEdit_NotFound() {
	ctx := context.Background()

	s.store.EXPECT().GetByID(ctx, "missing").Return(nil, domain.ErrDraftNotFound)

	_, err := s.service.ApplyEdit(ctx, "missing", DraftEdit{})

	s.ErrorIs(err, domain.ErrDraftNotFound)
}
