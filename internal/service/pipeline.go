package service

import (
	"context"
	"fmt"
	"log/slog"

	"listing_pipeline/internal/domain"
)

// PipelineService orchestrates bulk jobs: accept an upload, classify the
// photos in the background, and turn each classified item into a draft.
// Each job's goroutine is the sole writer of its registry entry.
type PipelineService struct {
	registry JobRegistry
	grouper  Grouper
	drafts   DraftSaver
	quota    QuotaChecker
	events   EventPublisher
	logger   *slog.Logger
}

// NewPipelineService wires the pipeline. quota and events may be nil, which
// disables the pre-flight capacity check and event publication respectively.
func NewPipelineService(
	registry JobRegistry,
	grouper Grouper,
	drafts DraftSaver,
	quota QuotaChecker,
	events EventPublisher,
	logger *slog.Logger,
) *PipelineService {
	return &PipelineService{
		registry: registry,
		grouper:  grouper,
		drafts:   drafts,
		quota:    quota,
		events:   events,
		logger:   logger.With("component", "pipeline"),
	}
}

// StartJob validates the upload, registers a job and kicks off its
// background task. The returned job ID can be polled immediately.
func (s *PipelineService) StartJob(ctx context.Context, ownerID string, photoPaths []string, styleHint string) (string, error) {
	var reasons []string
	if ownerID == "" {
		reasons = append(reasons, "owner_id is required")
	}
	if len(photoPaths) == 0 {
		reasons = append(reasons, "at least one photo is required")
	}
	if len(reasons) > 0 {
		return "", &domain.ValidationError{Reasons: reasons}
	}

	if s.quota != nil {
		if err := s.quota.CheckCapacity(ctx, ownerID, len(photoPaths)); err != nil {
			return "", fmt.Errorf("capacity check: %w", err)
		}
	}

	jobID := s.registry.Create(ownerID, len(photoPaths))

	// The job must outlive the upload request.
	go s.run(context.WithoutCancel(ctx), jobID, ownerID, photoPaths, styleHint)

	return jobID, nil
}

// GetJob returns a snapshot of the job for status polling.
func (s *PipelineService) GetJob(jobID string) (domain.Job, error) {
	return s.registry.Get(jobID)
}

func (s *PipelineService) run(ctx context.Context, jobID, ownerID string, photoPaths []string, styleHint string) {
	logger := s.logger.With("job_id", jobID, "owner_id", ownerID)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("job task panicked", "panic", rec)
			if err := s.registry.MarkFailed(jobID, fmt.Sprintf("internal error: %v", rec)); err != nil {
				logger.Error("failed to mark job failed", "error", err)
			}
			s.emit(ctx, domain.Event{Type: domain.EventJobFailed, JobID: jobID, OwnerID: ownerID})
		}
	}()

	if err := s.registry.Start(jobID); err != nil {
		logger.Error("failed to start job", "error", err)
		return
	}

	logger.Info("job started", "photos", len(photoPaths))

	items, groupErrs := s.grouper.GroupAndClassify(ctx, photoPaths, styleHint, func(done, total int) {
		pct := 50 * float64(done) / float64(total)
		if err := s.registry.UpdateProgress(jobID, pct, "classifying"); err != nil {
			logger.Warn("progress update rejected", "error", err)
		}
	})
	for _, msg := range groupErrs {
		if err := s.registry.RecordError(jobID, msg); err != nil {
			logger.Warn("failed to record job error", "error", err)
		}
	}

	if err := s.registry.SetTotalItems(jobID, len(items)); err != nil {
		logger.Warn("failed to set total items", "error", err)
	}

	draftIDs := make([]string, 0, len(items))
	for i, item := range items {
		resolved, wasMerged, err := s.drafts.SaveDraft(ctx, draftFromDescriptor(ownerID, item))
		if err != nil {
			logger.Error("failed to save draft", "title", item.Title, "error", err)
			_ = s.registry.RecordItemFailed(jobID, fmt.Sprintf("save draft %q: %v", item.Title, err))
		} else {
			draftIDs = append(draftIDs, resolved.ID)
			_ = s.registry.RecordItemCompleted(jobID, resolved.ID)

			eventType := domain.EventDraftCreated
			if wasMerged {
				eventType = domain.EventDraftMerged
			}
			s.emit(ctx, domain.Event{Type: eventType, JobID: jobID, DraftID: resolved.ID, OwnerID: ownerID})
		}

		pct := 50 + 49*float64(i+1)/float64(len(items))
		_ = s.registry.UpdateProgress(jobID, pct, "drafting")
	}

	if err := s.registry.MarkCompleted(jobID, draftIDs); err != nil {
		logger.Error("failed to complete job", "error", err)
		return
	}
	s.emit(ctx, domain.Event{Type: domain.EventJobCompleted, JobID: jobID, OwnerID: ownerID})

	logger.Info("job completed",
		"items", len(items),
		"drafts", len(draftIDs),
		"errors", len(groupErrs),
	)
}

func (s *PipelineService) emit(ctx context.Context, event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "type", event.Type, "error", err)
	}
}

// draftFromDescriptor maps one classified item onto a draft candidate.
// Items the classifier could not identify (confidence 0, fallback grouping)
// stay pending so the user reviews them before publish preparation.
func draftFromDescriptor(ownerID string, item domain.ItemDescriptor) *domain.Draft {
	status := domain.DraftStatusReady
	if item.Confidence <= 0 {
		status = domain.DraftStatusPending
	}

	return &domain.Draft{
		OwnerID:          ownerID,
		Title:            item.Title,
		Description:      item.Description,
		Price:            item.Price,
		Category:         item.Category,
		Condition:        item.Condition,
		Color:            item.Color,
		Brand:            item.Brand,
		Size:             item.Size,
		Photos:           item.Photos,
		Status:           status,
		Confidence:       item.Confidence,
		ContentValidated: item.Confidence > 0 && item.Title != "" && item.Price > 0,
		PhotosValidated:  len(item.Photos) > 0,
	}
}
