package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// GradingGroupFilter narrows grading group queries.
type GradingGroupFilter struct {
	SemesterCode         *string
	AssessmentTemplateID *uint
	LecturerID           *uint
}

// GradingGroupRepository defines data operations for grading groups.
type GradingGroupRepository interface {
	List(ctx context.Context, filter GradingGroupFilter) ([]models.GradingGroup, error)
	GetByID(ctx context.Context, id uint) (models.GradingGroup, error)
	Create(ctx context.Context, group *models.GradingGroup) error
}

type gradingGroupRepository struct {
	db *gorm.DB
}

// NewGradingGroupRepository instantiates the repository.
func NewGradingGroupRepository(db *gorm.DB) GradingGroupRepository {
	return &gradingGroupRepository{db: db}
}

func (r *gradingGroupRepository) List(ctx context.Context, filter GradingGroupFilter) ([]models.GradingGroup, error) {
	query := r.db.WithContext(ctx).Model(&models.GradingGroup{})

	if filter.SemesterCode != nil {
		query = query.Where("semester_code = ?", *filter.SemesterCode)
	}

	if filter.AssessmentTemplateID != nil {
		query = query.Where("assessment_template_id = ?", *filter.AssessmentTemplateID)
	}

	if filter.LecturerID != nil {
		query = query.Where("lecturer_id = ?", *filter.LecturerID)
	}

	var groups []models.GradingGroup
	if err := query.Order("created_at DESC").Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *gradingGroupRepository) GetByID(ctx context.Context, id uint) (models.GradingGroup, error) {
	var group models.GradingGroup
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return models.GradingGroup{}, err
	}

	return group, nil
}

func (r *gradingGroupRepository) Create(ctx context.Context, group *models.GradingGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}
