package models

import "time"

// Assessment kinds recognised by the grading precedence policy.
const (
	AssessmentKindAssignment    = "assignment"
	AssessmentKindLab           = "lab"
	AssessmentKindPracticalExam = "practical-exam"
)

// AssessmentTemplate is the reusable definition of an assessment.
type AssessmentTemplate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Kind      string    `gorm:"size:32;not null" json:"kind"`
	MaxScore  float64   `json:"max_score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClassAssessment is one class's scheduled instance of a template, carrying
// the publication state that switches the grading precedence policy.
type ClassAssessment struct {
	ID                   uint               `gorm:"primaryKey" json:"id"`
	AssessmentTemplateID uint               `gorm:"not null;index" json:"assessment_template_id"`
	ClassCode            string             `gorm:"size:32;not null" json:"class_code"`
	IsPublished          bool               `gorm:"not null;default:false" json:"is_published"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
	Template             AssessmentTemplate `gorm:"foreignKey:AssessmentTemplateID" json:"template"`
}

// AssessmentContext classifies the assessment an evaluation runs under. It is
// derived from template and class metadata by the caller; the resolution
// engine only reads it.
type AssessmentContext struct {
	Type        string `json:"type"`
	IsPublished bool   `json:"is_published"`
}

// IsLab reports whether the context is a lab, the only kind where the AI
// grade can outrank a lecturer grade (before publication).
func (c AssessmentContext) IsLab() bool {
	return c.Type == AssessmentKindLab
}
