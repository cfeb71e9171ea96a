package models

import "time"

// Submission represents one attempt by a student to hand in work for an
// assessment context. Rows are append-only: a re-submission creates a new row
// rather than updating the old one, so several rows may exist for the same
// (student, context) pair.
type Submission struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	ClassAssessmentID *uint      `gorm:"index" json:"class_assessment_id"`
	GradingGroupID    *uint      `gorm:"index" json:"grading_group_id"`
	StudentID         uint       `gorm:"not null;index" json:"student_id"`
	FileURL           string     `gorm:"size:512" json:"file_url"`
	SubmittedAt       *time.Time `json:"submitted_at"`
	LastGrade         *float64   `json:"last_grade"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}

// RecencyKey returns the timestamp used to order competing submissions:
// UpdatedAt when present, otherwise SubmittedAt, otherwise the zero time.
// Rows migrated from the legacy system may carry neither.
func (s Submission) RecencyKey() time.Time {
	if s.UpdatedAt != nil {
		return *s.UpdatedAt
	}
	if s.SubmittedAt != nil {
		return *s.SubmittedAt
	}
	return time.Time{}
}

// HasFile reports whether the student actually submitted work, as opposed to
// a placeholder row created ahead of the upload.
func (s Submission) HasFile() bool {
	return s.SubmittedAt != nil && s.FileURL != ""
}
