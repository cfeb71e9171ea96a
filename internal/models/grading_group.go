package models

import "time"

// GradingGroup is one lecturer's grading assignment for a template in one
// semester. Re-creating the group (after a reset) inserts a duplicate row for
// the same (semester, template, lecturer) tuple; the most recently created
// row is canonical while older rows keep their attached submissions.
type GradingGroup struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	AssessmentTemplateID uint      `gorm:"not null;index" json:"assessment_template_id"`
	LecturerID           uint      `gorm:"not null;index" json:"lecturer_id"`
	SemesterCode         string    `gorm:"size:16;not null;index" json:"semester_code"`
	CreatedAt            time.Time `json:"created_at"`
}
