package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// ErrSessionTerminal indicates an attempt to move a grading session out of a
// terminal status.
var ErrSessionTerminal = errors.New("grading session already in terminal status")

// GradingSessionRepository defines data operations for grading sessions.
type GradingSessionRepository interface {
	ListBySubmissionIDs(ctx context.Context, submissionIDs []uint) ([]models.GradingSession, error)
	Create(ctx context.Context, session *models.GradingSession) error
	UpdateStatus(ctx context.Context, sessionID uint, status string) error
}

type gradingSessionRepository struct {
	db *gorm.DB
}

// NewGradingSessionRepository instantiates the repository.
func NewGradingSessionRepository(db *gorm.DB) GradingSessionRepository {
	return &gradingSessionRepository{db: db}
}

// ListBySubmissionIDs fetches every session attached to any of the given
// submissions in one query; callers bucket the result by SubmissionID.
func (r *gradingSessionRepository) ListBySubmissionIDs(ctx context.Context, submissionIDs []uint) ([]models.GradingSession, error) {
	if len(submissionIDs) == 0 {
		return nil, nil
	}

	var sessions []models.GradingSession
	if err := r.db.WithContext(ctx).
		Where("submission_id IN ?", submissionIDs).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *gradingSessionRepository) Create(ctx context.Context, session *models.GradingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// UpdateStatus applies the processing→{completed,failed} transition. Sessions
// already in a terminal status are immutable.
func (r *gradingSessionRepository) UpdateStatus(ctx context.Context, sessionID uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.GradingSession{}).
		Where("id = ?", sessionID).
		Where("status = ?", models.SessionStatusProcessing).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionTerminal
	}

	return nil
}
