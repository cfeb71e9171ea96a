package resolution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSelectCurrentSubmissionEmpty(t *testing.T) {
	require.Nil(t, SelectCurrentSubmission(nil))
	require.Nil(t, SelectCurrentSubmission([]models.Submission{}))
}

func TestSelectCurrentSubmissionLatestWins(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(2 * time.Hour)

	submissions := []models.Submission{
		{ID: 1, UpdatedAt: timePtr(t0)},
		{ID: 2, UpdatedAt: timePtr(t1)},
	}

	current := SelectCurrentSubmission(submissions)
	require.NotNil(t, current)
	require.Equal(t, uint(2), current.ID)
}

func TestSelectCurrentSubmissionFallsBackToSubmittedAt(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	submissions := []models.Submission{
		{ID: 5, SubmittedAt: timePtr(t1)},
		{ID: 9, UpdatedAt: timePtr(t0)},
	}

	current := SelectCurrentSubmission(submissions)
	require.Equal(t, uint(5), current.ID, "SubmittedAt should stand in for a missing UpdatedAt")
}

func TestSelectCurrentSubmissionTieBrokenByID(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	submissions := []models.Submission{
		{ID: 7, UpdatedAt: timePtr(t0)},
		{ID: 3, UpdatedAt: timePtr(t0)},
	}

	require.Equal(t, uint(7), SelectCurrentSubmission(submissions).ID)
}

func TestSelectCurrentSubmissionMissingTimestampsLose(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	submissions := []models.Submission{
		{ID: 99},
		{ID: 1, SubmittedAt: timePtr(t0)},
	}
	require.Equal(t, uint(1), SelectCurrentSubmission(submissions).ID)

	// Both untimestamped: the higher ID wins.
	bare := []models.Submission{{ID: 4}, {ID: 11}, {ID: 6}}
	require.Equal(t, uint(11), SelectCurrentSubmission(bare).ID)
}

func TestSelectCurrentSubmissionRecencyInvariant(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	submissions := []models.Submission{
		{ID: 1, SubmittedAt: timePtr(base.Add(3 * time.Hour))},
		{ID: 2, UpdatedAt: timePtr(base.Add(time.Hour))},
		{ID: 3},
		{ID: 4, UpdatedAt: timePtr(base.Add(3 * time.Hour))},
		{ID: 5, SubmittedAt: timePtr(base)},
	}

	current := SelectCurrentSubmission(submissions)
	require.NotNil(t, current)
	for _, other := range submissions {
		require.False(t, current.RecencyKey().Before(other.RecencyKey()),
			"current submission must be at least as recent as every other row")
	}
	require.Equal(t, uint(4), current.ID, "equal keys resolve to the higher ID")
}

func TestSelectCurrentSubmissionDoesNotMutateInput(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	submissions := []models.Submission{
		{ID: 2, UpdatedAt: timePtr(t0.Add(time.Hour))},
		{ID: 1, UpdatedAt: timePtr(t0)},
	}

	SelectCurrentSubmission(submissions)
	require.Equal(t, uint(2), submissions[0].ID)
	require.Equal(t, uint(1), submissions[1].ID)
}
