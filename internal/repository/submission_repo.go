package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// SubmissionFilter narrows submission queries to one assessment context.
// Exactly one of ClassAssessmentID or GradingGroupIDs should be set;
// GradingGroupIDs may span the historical duplicates of one logical group.
type SubmissionFilter struct {
	StudentID         *uint
	ClassAssessmentID *uint
	GradingGroupIDs   []uint
}

// SubmissionRepository defines read and append operations for submissions.
// Submission rows are append-only; there is deliberately no update method.
type SubmissionRepository interface {
	List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error)
	StudentIDs(ctx context.Context, filter SubmissionFilter) ([]uint, error)
	Create(ctx context.Context, submission *models.Submission) error
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) baseQuery(ctx context.Context, filter SubmissionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Submission{})

	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}

	if filter.ClassAssessmentID != nil {
		query = query.Where("class_assessment_id = ?", *filter.ClassAssessmentID)
	}

	if len(filter.GradingGroupIDs) > 0 {
		query = query.Where("grading_group_id IN ?", filter.GradingGroupIDs)
	}

	return query
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := r.baseQuery(ctx, filter).Order("created_at DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	return submissions, nil
}

// StudentIDs returns the distinct students with at least one submission row
// matching the filter, used for roster resolution and unique-student counts.
func (r *submissionRepository) StudentIDs(ctx context.Context, filter SubmissionFilter) ([]uint, error) {
	var ids []uint
	if err := r.baseQuery(ctx, filter).Distinct("student_id").Order("student_id").Pluck("student_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}
