package models

import "time"

// GradeItem is the score awarded for one rubric criterion within a grading
// session. Corrections append a new row for the same rubric item; only the
// most recent row per (session, rubric item) is authoritative.
type GradeItem struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	GradingSessionID uint      `gorm:"not null;index" json:"grading_session_id"`
	RubricItemID     uint      `gorm:"not null;index" json:"rubric_item_id"`
	Score            float64   `gorm:"not null" json:"score"`
	Comments         string    `gorm:"type:text" json:"comments"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
