package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// RubricItemRepository defines lookups over rubric criteria.
type RubricItemRepository interface {
	ListByQuestion(ctx context.Context, questionID uint) ([]models.RubricItem, error)
	MaxScoresByTemplate(ctx context.Context, templateID uint) (map[uint]float64, error)
	Create(ctx context.Context, item *models.RubricItem) error
}

type rubricItemRepository struct {
	db *gorm.DB
}

// NewRubricItemRepository instantiates the repository.
func NewRubricItemRepository(db *gorm.DB) RubricItemRepository {
	return &rubricItemRepository{db: db}
}

func (r *rubricItemRepository) ListByQuestion(ctx context.Context, questionID uint) ([]models.RubricItem, error) {
	var items []models.RubricItem
	if err := r.db.WithContext(ctx).
		Where("assessment_question_id = ?", questionID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// MaxScoresByTemplate reduces every rubric item under a template into the
// max-score lookup the resolution engine consumes.
func (r *rubricItemRepository) MaxScoresByTemplate(ctx context.Context, templateID uint) (map[uint]float64, error) {
	var items []models.RubricItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN assessment_questions ON assessment_questions.id = rubric_items.assessment_question_id").
		Where("assessment_questions.assessment_template_id = ?", templateID).
		Find(&items).Error; err != nil {
		return nil, err
	}

	maxByItemID := make(map[uint]float64, len(items))
	for _, item := range items {
		maxByItemID[item.ID] = item.Score
	}

	return maxByItemID, nil
}

func (r *rubricItemRepository) Create(ctx context.Context, item *models.RubricItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
