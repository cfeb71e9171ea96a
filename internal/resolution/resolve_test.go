package resolution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

func TestResolveNoSubmission(t *testing.T) {
	result := Resolve(Input{Context: assignmentCtx})

	require.Equal(t, StatusNoSubmission, result.Status)
	require.Nil(t, result.Submission)
	require.Nil(t, result.Session)
	require.Zero(t, result.Grade)
}

func TestResolveUngradedSubmission(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	result := Resolve(Input{
		SubmissionsForStudent: []models.Submission{{ID: 1, UpdatedAt: timePtr(t0)}},
		Context:               assignmentCtx,
	})

	require.Equal(t, StatusUngraded, result.Status)
	require.NotNil(t, result.Submission)
	require.Equal(t, uint(1), result.Submission.ID)
	require.Nil(t, result.Session)
	require.Zero(t, result.Grade)
}

func TestResolveGradedLatestSubmission(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	result := Resolve(Input{
		SubmissionsForStudent: []models.Submission{
			{ID: 1, UpdatedAt: timePtr(t0)},
			{ID: 2, UpdatedAt: timePtr(t1)},
		},
		SessionsBySubmissionID: map[uint][]models.GradingSession{
			2: {completedSession(20, models.GradingTypeLecturer, t1)},
		},
		ItemsBySessionID: map[uint][]models.GradeItem{
			20: {
				{ID: 1, RubricItemID: 100, Score: 4, CreatedAt: t1, UpdatedAt: t1},
				{ID: 2, RubricItemID: 101, Score: 4, CreatedAt: t1, UpdatedAt: t1},
			},
		},
		RubricMaxByItemID: map[uint]float64{100: 5, 101: 5},
		Context:           assignmentCtx,
	})

	require.Equal(t, StatusGraded, result.Status)
	require.Equal(t, uint(2), result.Submission.ID)
	require.Equal(t, uint(20), result.Session.ID)
	require.InDelta(t, 8.0, result.Grade, 1e-9)
}

// labInput builds one submission with a completed AI session scoring 7.0 and
// a completed lecturer session scoring 9.0.
func labInput(ctx models.AssessmentContext) Input {
	t0 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	return Input{
		SubmissionsForStudent: []models.Submission{{ID: 1, UpdatedAt: timePtr(t0)}},
		SessionsBySubmissionID: map[uint][]models.GradingSession{
			1: {
				completedSession(10, models.GradingTypeAI, t0),
				completedSession(11, models.GradingTypeLecturer, t0.Add(time.Minute)),
			},
		},
		ItemsBySessionID: map[uint][]models.GradeItem{
			10: {{ID: 1, RubricItemID: 100, Score: 7, CreatedAt: t0, UpdatedAt: t0}},
			11: {{ID: 2, RubricItemID: 100, Score: 9, CreatedAt: t0, UpdatedAt: t0}},
		},
		RubricMaxByItemID: map[uint]float64{100: 10},
		Context:           ctx,
	}
}

func TestResolvePublishedLabUsesLecturerSession(t *testing.T) {
	result := Resolve(labInput(publishedLabCtx))

	require.Equal(t, StatusGraded, result.Status)
	require.Equal(t, uint(11), result.Session.ID)
	require.InDelta(t, 9.0, result.Grade, 1e-9)
}

func TestResolveUnpublishedLabUsesAISession(t *testing.T) {
	result := Resolve(labInput(unpublishedLabCtx))

	require.Equal(t, StatusGraded, result.Status)
	require.Equal(t, uint(10), result.Session.ID)
	require.InDelta(t, 7.0, result.Grade, 1e-9)
}

func TestResolveDeterministic(t *testing.T) {
	input := labInput(publishedLabCtx)

	first := Resolve(input)
	second := Resolve(input)
	require.Equal(t, first, second)
}

func TestResolveIgnoresSessionsOfSupersededSubmissions(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	result := Resolve(Input{
		SubmissionsForStudent: []models.Submission{
			{ID: 1, UpdatedAt: timePtr(t0)},
			{ID: 2, UpdatedAt: timePtr(t0.Add(time.Hour))},
		},
		SessionsBySubmissionID: map[uint][]models.GradingSession{
			1: {completedSession(10, models.GradingTypeLecturer, t0)},
		},
		Context: assignmentCtx,
	})

	// The graded session belongs to the old submission; the re-submission is
	// ungraded until a new session completes.
	require.Equal(t, StatusUngraded, result.Status)
	require.Equal(t, uint(2), result.Submission.ID)
	require.Nil(t, result.Session)
}
