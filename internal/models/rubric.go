package models

import "time"

// AssessmentQuestion groups rubric criteria under one question of a template.
type AssessmentQuestion struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	AssessmentTemplateID uint      `gorm:"not null;index" json:"assessment_template_id"`
	Title                string    `gorm:"size:255;not null" json:"title"`
	Position             int       `gorm:"not null" json:"position"`
	CreatedAt            time.Time `json:"created_at"`
	RubricItems          []RubricItem
}

// RubricItem is a single scoring criterion. Score holds the maximum
// attainable for the criterion, not an awarded value.
type RubricItem struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	AssessmentQuestionID uint      `gorm:"not null;index" json:"assessment_question_id"`
	Criterion            string    `gorm:"type:text;not null" json:"criterion"`
	Score                float64   `gorm:"not null" json:"score"`
	CreatedAt            time.Time `json:"created_at"`
}
