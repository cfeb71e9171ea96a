package resolution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

var (
	assignmentCtx     = models.AssessmentContext{Type: models.AssessmentKindAssignment, IsPublished: true}
	publishedLabCtx   = models.AssessmentContext{Type: models.AssessmentKindLab, IsPublished: true}
	unpublishedLabCtx = models.AssessmentContext{Type: models.AssessmentKindLab, IsPublished: false}
	practicalCtx      = models.AssessmentContext{Type: models.AssessmentKindPracticalExam, IsPublished: false}
)

func completedSession(id uint, gradingType string, createdAt time.Time) models.GradingSession {
	return models.GradingSession{
		ID:          id,
		Status:      models.SessionStatusCompleted,
		GradingType: gradingType,
		CreatedAt:   createdAt,
	}
}

func TestSelectSessionNoCompleted(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		{ID: 1, Status: models.SessionStatusProcessing, GradingType: models.GradingTypeAI, CreatedAt: now},
		{ID: 2, Status: models.SessionStatusFailed, GradingType: models.GradingTypeLecturer, CreatedAt: now},
	}

	require.Nil(t, SelectSession(sessions, assignmentCtx))
	require.Nil(t, SelectSession(nil, publishedLabCtx))
}

func TestSelectSessionPublishedLabPrefersLecturer(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(1, models.GradingTypeAI, now.Add(time.Hour)),
		completedSession(2, models.GradingTypeLecturer, now),
	}

	selected := SelectSession(sessions, publishedLabCtx)
	require.NotNil(t, selected)
	require.Equal(t, uint(2), selected.ID, "a newer AI session must not outrank the lecturer on a published lab")
}

func TestSelectSessionPublishedLabFallsBackToAI(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(1, models.GradingTypeAI, now),
		completedSession(2, models.GradingTypeAI, now.Add(time.Minute)),
		{ID: 3, Status: models.SessionStatusProcessing, GradingType: models.GradingTypeLecturer, CreatedAt: now.Add(time.Hour)},
	}

	selected := SelectSession(sessions, publishedLabCtx)
	require.Equal(t, uint(2), selected.ID, "newest AI session wins when no lecturer session completed")
}

func TestSelectSessionUnpublishedLabPrefersAI(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(1, models.GradingTypeLecturer, now.Add(time.Hour)),
		completedSession(2, models.GradingTypeAI, now),
	}

	selected := SelectSession(sessions, unpublishedLabCtx)
	require.Equal(t, uint(2), selected.ID, "pre-publication labs keep the AI feedback authoritative")
}

func TestSelectSessionUnpublishedLabFallsBackToMostRecent(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(1, models.GradingTypeLecturer, now),
		completedSession(2, models.GradingTypeBoth, now.Add(time.Hour)),
	}

	selected := SelectSession(sessions, unpublishedLabCtx)
	require.Equal(t, uint(2), selected.ID)
}

func TestSelectSessionAssignmentPrefersHuman(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	for _, humanType := range []string{models.GradingTypeLecturer, models.GradingTypeBoth} {
		sessions := []models.GradingSession{
			completedSession(1, models.GradingTypeAI, now.Add(2 * time.Hour)),
			completedSession(2, humanType, now),
		}
		selected := SelectSession(sessions, assignmentCtx)
		require.Equal(t, uint(2), selected.ID, "grading type %s should outrank AI", humanType)
	}
}

func TestSelectSessionLecturerAndBothShareBucket(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(1, models.GradingTypeLecturer, now),
		completedSession(2, models.GradingTypeBoth, now.Add(time.Minute)),
	}

	// Recency decides between lecturer and both, in either context family.
	require.Equal(t, uint(2), SelectSession(sessions, assignmentCtx).ID)
	require.Equal(t, uint(2), SelectSession(sessions, publishedLabCtx).ID)
}

func TestSelectSessionPracticalExamAIOnlyFallsBack(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(4, models.GradingTypeAI, now),
		completedSession(5, models.GradingTypeAI, now.Add(time.Minute)),
	}

	selected := SelectSession(sessions, practicalCtx)
	require.Equal(t, uint(5), selected.ID, "with no human session the newest completed one is used")
}

func TestSelectSessionCreatedAtTieBrokenByID(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	sessions := []models.GradingSession{
		completedSession(3, models.GradingTypeLecturer, now),
		completedSession(8, models.GradingTypeLecturer, now),
	}

	require.Equal(t, uint(8), SelectSession(sessions, assignmentCtx).ID)
}
