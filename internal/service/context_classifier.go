package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/aksara-labs/gradewise-api/internal/models"
	"github.com/aksara-labs/gradewise-api/internal/repository"
)

// ErrAssessmentNotFound indicates the class assessment was not located.
var ErrAssessmentNotFound = errors.New("class assessment not found")

// ContextClassifier derives the AssessmentContext the resolution engine
// consumes from template and class metadata. The engine itself never
// classifies; this service is its external classifier collaborator.
type ContextClassifier interface {
	ClassifyAssessment(ctx context.Context, classAssessmentID uint) (models.AssessmentContext, models.ClassAssessment, error)
	ClassifyGroup(ctx context.Context, group models.GradingGroup) (models.AssessmentContext, error)
}

type contextClassifier struct {
	assessments repository.AssessmentRepository
	logger      zerolog.Logger
}

// NewContextClassifier constructs the classifier.
func NewContextClassifier(assessments repository.AssessmentRepository, logger zerolog.Logger) ContextClassifier {
	return &contextClassifier{
		assessments: assessments,
		logger:      logger.With().Str("component", "context_classifier").Logger(),
	}
}

func (s *contextClassifier) ClassifyAssessment(ctx context.Context, classAssessmentID uint) (models.AssessmentContext, models.ClassAssessment, error) {
	assessment, err := s.assessments.GetClassAssessment(ctx, classAssessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.AssessmentContext{}, models.ClassAssessment{}, ErrAssessmentNotFound
		}
		return models.AssessmentContext{}, models.ClassAssessment{}, err
	}

	assessmentContext := models.AssessmentContext{
		Type:        assessment.Template.Kind,
		IsPublished: assessment.IsPublished,
	}

	return assessmentContext, assessment, nil
}

// ClassifyGroup derives the context for submissions attached directly to a
// grading group. Groups carry no publication state of their own: they feed
// the formative grading path, so labs stay in the pre-publication policy
// until the class assessment built from the same template is published and
// consumers switch to the assessment-scoped view.
func (s *contextClassifier) ClassifyGroup(ctx context.Context, group models.GradingGroup) (models.AssessmentContext, error) {
	template, err := s.assessments.GetTemplate(ctx, group.AssessmentTemplateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Orphaned group rows fall back to the strictest policy.
			s.logger.Warn().Uint("grading_group_id", group.ID).Msg("grading group references missing template")
			return models.AssessmentContext{Type: models.AssessmentKindAssignment}, nil
		}
		return models.AssessmentContext{}, err
	}

	return models.AssessmentContext{Type: template.Kind, IsPublished: false}, nil
}
