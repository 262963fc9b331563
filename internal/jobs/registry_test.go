package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing_pipeline/internal/domain"
)

func TestRegistry_Lifecycle(t *testing.T) {
	r := NewRegistry()

	jobID := r.Create("owner-1", 10)
	job, err := r.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, job.Status)
	assert.Equal(t, 10, job.TotalPhotos)
	assert.Zero(t, job.ProgressPercent)

	require.NoError(t, r.Start(jobID))
	require.NoError(t, r.SetTotalItems(jobID, 2))
	require.NoError(t, r.RecordItemCompleted(jobID, "draft-1"))
	require.NoError(t, r.RecordItemCompleted(jobID, "draft-2"))
	require.NoError(t, r.MarkCompleted(jobID, []string{"draft-1", "draft-2"}))

	job, err = r.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Equal(t, 100.0, job.ProgressPercent)
	assert.Equal(t, 2, job.TotalItems)
	assert.Equal(t, 2, job.CompletedItems)
	assert.Equal(t, []string{"draft-1", "draft-2"}, job.DraftIDs)
	assert.NotNil(t, job.CompletedAt)
}

func TestRegistry_ProgressMonotonic(t *testing.T) {
	r := NewRegistry()
	jobID := r.Create("owner-1", 4)
	require.NoError(t, r.Start(jobID))

	require.NoError(t, r.UpdateProgress(jobID, 40, "classifying"))
	// A reordered async event must never move progress backwards.
	require.NoError(t, r.UpdateProgress(jobID, 25, "classifying"))

	job, err := r.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, job.ProgressPercent)

	require.NoError(t, r.UpdateProgress(jobID, 70, "drafting"))
	job, _ = r.Get(jobID)
	assert.Equal(t, 70.0, job.ProgressPercent)
	assert.Equal(t, "drafting", job.Phase)

	// 100.0 is reserved for the completed state.
	require.NoError(t, r.UpdateProgress(jobID, 100, "drafting"))
	job, _ = r.Get(jobID)
	assert.Less(t, job.ProgressPercent, 100.0)

	require.NoError(t, r.MarkCompleted(jobID, nil))
	job, _ = r.Get(jobID)
	assert.Equal(t, 100.0, job.ProgressPercent)
}

func TestRegistry_TerminalStatesAreFinal(t *testing.T) {
	r := NewRegistry()

	completed := r.Create("owner-1", 1)
	require.NoError(t, r.Start(completed))
	require.NoError(t, r.MarkCompleted(completed, nil))

	assert.Error(t, r.Start(completed))
	assert.ErrorIs(t, r.UpdateProgress(completed, 50, ""), ErrTerminalState)
	assert.ErrorIs(t, r.RecordItemCompleted(completed, "d"), ErrTerminalState)
	assert.ErrorIs(t, r.MarkFailed(completed, "late failure"), ErrTerminalState)

	failed := r.Create("owner-1", 1)
	require.NoError(t, r.Start(failed))
	require.NoError(t, r.MarkFailed(failed, "boom"))

	assert.Error(t, r.MarkCompleted(failed, nil))
	assert.ErrorIs(t, r.UpdateProgress(failed, 10, ""), ErrTerminalState)
}

func TestRegistry_FailurePreservesPartialResults(t *testing.T) {
	r := NewRegistry()
	jobID := r.Create("owner-1", 6)
	require.NoError(t, r.Start(jobID))

	require.NoError(t, r.SetTotalItems(jobID, 3))
	require.NoError(t, r.RecordItemCompleted(jobID, "draft-1"))
	require.NoError(t, r.UpdateProgress(jobID, 60, "drafting"))
	require.NoError(t, r.MarkFailed(jobID, "classifier exploded"))

	job, err := r.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	assert.Equal(t, []string{"draft-1"}, job.DraftIDs)
	assert.Equal(t, 60.0, job.ProgressPercent)
	assert.Equal(t, []string{"classifier exploded"}, job.Errors)
	assert.NotNil(t, job.CompletedAt)
}

func TestRegistry_UnknownJob(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("nope")
	assert.True(t, errors.Is(err, domain.ErrJobNotFound))
	assert.ErrorIs(t, r.Start("nope"), domain.ErrJobNotFound)
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	r := NewRegistry()
	jobID := r.Create("owner-1", 2)
	require.NoError(t, r.Start(jobID))
	require.NoError(t, r.RecordItemCompleted(jobID, "draft-1"))

	snapshot, err := r.Get(jobID)
	require.NoError(t, err)
	snapshot.DraftIDs[0] = "mutated"

	fresh, err := r.Get(jobID)
	require.NoError(t, err)
	assert.Equal(t, []string{"draft-1"}, fresh.DraftIDs)
}
