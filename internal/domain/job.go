package domain

import "time"

// JobStatus is the lifecycle state of a bulk upload job. Transitions form a
// one-way state machine: queued -> processing -> {completed | failed}.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job tracks one bulk upload's background processing lifecycle. It is owned
// exclusively by the background task running it; readers get snapshots.
type Job struct {
	ID          string
	OwnerID     string
	Status      JobStatus
	TotalPhotos int
	TotalItems  int
	// CompletedItems and FailedItems count per-item draft outcomes.
	CompletedItems int
	FailedItems    int
	// ProgressPercent is non-decreasing and equals 100.0 iff the job completed.
	ProgressPercent float64
	Phase           string
	// DraftIDs lists produced drafts in creation order.
	DraftIDs    []string
	Errors      []string
	StartedAt   time.Time
	CompletedAt *time.Time
}
