package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// AssessmentRepository defines lookups over assessment metadata feeding the
// context classifier.
type AssessmentRepository interface {
	GetClassAssessment(ctx context.Context, id uint) (models.ClassAssessment, error)
	GetTemplate(ctx context.Context, id uint) (models.AssessmentTemplate, error)
	CreateTemplate(ctx context.Context, template *models.AssessmentTemplate) error
	CreateClassAssessment(ctx context.Context, assessment *models.ClassAssessment) error
}

type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository instantiates the repository.
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) GetClassAssessment(ctx context.Context, id uint) (models.ClassAssessment, error) {
	var assessment models.ClassAssessment
	if err := r.db.WithContext(ctx).Preload("Template").First(&assessment, id).Error; err != nil {
		return models.ClassAssessment{}, err
	}

	return assessment, nil
}

func (r *assessmentRepository) GetTemplate(ctx context.Context, id uint) (models.AssessmentTemplate, error) {
	var template models.AssessmentTemplate
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		return models.AssessmentTemplate{}, err
	}

	return template, nil
}

func (r *assessmentRepository) CreateTemplate(ctx context.Context, template *models.AssessmentTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *assessmentRepository) CreateClassAssessment(ctx context.Context, assessment *models.ClassAssessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}
