// Package jobs tracks bulk job lifecycles in process memory. Each job has a
// single writer (the background task running it); readers receive snapshot
// copies, so status polls may be briefly stale but never torn.
package jobs

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"listing_pipeline/internal/domain"
)

// ErrTerminalState is returned for any mutation of a completed or failed job.
var ErrTerminalState = errors.New("job is in a terminal state")

// Registry is the in-memory job registry. Job state is ephemeral by design:
// drafts, not jobs, are the durable record of pipeline output.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
	now  func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[string]*domain.Job),
		now:  time.Now,
	}
}

// Create registers a new queued job and returns its ID.
func (r *Registry) Create(ownerID string, totalPhotos int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	job := &domain.Job{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Status:      domain.JobStatusQueued,
		TotalPhotos: totalPhotos,
		StartedAt:   r.now(),
	}
	r.jobs[job.ID] = job

	return job.ID
}

// Start transitions a job from queued to processing.
func (r *Registry) Start(jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status != domain.JobStatusQueued {
		return fmt.Errorf("start job %s: illegal transition from %q", jobID, job.Status)
	}

	job.Status = domain.JobStatusProcessing
	return nil
}

// UpdateProgress records progress for a processing job. Values below the
// last recorded percent are clamped so observed progress is monotonic even
// if async events arrive out of order. Progress caps at 99.9 until the job
// reaches a terminal state; only MarkCompleted sets 100.0.
func (r *Registry) UpdateProgress(jobID string, percent float64, phase string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return fmt.Errorf("update job %s: %w", jobID, ErrTerminalState)
	}

	if percent > 99.9 {
		percent = 99.9
	}
	if percent > job.ProgressPercent {
		job.ProgressPercent = percent
	}
	if phase != "" {
		job.Phase = phase
	}

	return nil
}

// SetTotalItems records how many items the classifier produced for the job.
func (r *Registry) SetTotalItems(jobID string, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return fmt.Errorf("update job %s: %w", jobID, ErrTerminalState)
	}

	job.TotalItems = total
	return nil
}

// RecordItemCompleted appends a produced draft and bumps the completed count.
func (r *Registry) RecordItemCompleted(jobID, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return fmt.Errorf("update job %s: %w", jobID, ErrTerminalState)
	}

	job.CompletedItems++
	job.DraftIDs = append(job.DraftIDs, draftID)
	return nil
}

// RecordItemFailed bumps the failed count and records the error.
func (r *Registry) RecordItemFailed(jobID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return fmt.Errorf("update job %s: %w", jobID, ErrTerminalState)
	}

	job.FailedItems++
	job.Errors = append(job.Errors, message)
	return nil
}

// RecordError appends a non-fatal error without affecting item counts.
func (r *Registry) RecordError(jobID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return fmt.Errorf("update job %s: %w", jobID, ErrTerminalState)
	}

	job.Errors = append(job.Errors, message)
	return nil
}

// MarkCompleted moves the job to its terminal completed state with the final
// draft list and progress pinned at exactly 100.0.
func (r *Registry) MarkCompleted(jobID string, draftIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status != domain.JobStatusProcessing {
		return fmt.Errorf("complete job %s: illegal transition from %q", jobID, job.Status)
	}

	now := r.now()
	job.Status = domain.JobStatusCompleted
	job.ProgressPercent = 100.0
	job.Phase = "completed"
	job.DraftIDs = append([]string(nil), draftIDs...)
	job.CompletedAt = &now
	return nil
}

// MarkFailed moves the job to its terminal failed state. Drafts already
// produced and the partial progress value are preserved; nothing is rolled
// back.
func (r *Registry) MarkFailed(jobID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return fmt.Errorf("fail job %s: %w", jobID, ErrTerminalState)
	}

	now := r.now()
	job.Status = domain.JobStatusFailed
	job.Phase = "failed"
	if message != "" {
		job.Errors = append(job.Errors, message)
	}
	job.CompletedAt = &now
	return nil
}

// Get returns a snapshot copy of the job.
func (r *Registry) Get(jobID string) (domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, err := r.get(jobID)
	if err != nil {
		return domain.Job{}, err
	}

	snapshot := *job
	snapshot.DraftIDs = append([]string(nil), job.DraftIDs...)
	snapshot.Errors = append([]string(nil), job.Errors...)
	if job.CompletedAt != nil {
		completedAt := *job.CompletedAt
		snapshot.CompletedAt = &completedAt
	}

	return snapshot, nil
}

func (r *Registry) get(jobID string) (*domain.Job, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrJobNotFound)
	}
	return job, nil
}
