package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// GradeItemRepository defines data operations for itemized rubric scores.
// Corrections append a new row; the resolution engine picks the latest.
type GradeItemRepository interface {
	ListBySessionIDs(ctx context.Context, sessionIDs []uint) ([]models.GradeItem, error)
	Create(ctx context.Context, item *models.GradeItem) error
}

type gradeItemRepository struct {
	db *gorm.DB
}

// NewGradeItemRepository instantiates the repository.
func NewGradeItemRepository(db *gorm.DB) GradeItemRepository {
	return &gradeItemRepository{db: db}
}

func (r *gradeItemRepository) ListBySessionIDs(ctx context.Context, sessionIDs []uint) ([]models.GradeItem, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	var items []models.GradeItem
	if err := r.db.WithContext(ctx).
		Where("grading_session_id IN ?", sessionIDs).
		Order("updated_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *gradeItemRepository) Create(ctx context.Context, item *models.GradeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
