package models

import (
	"time"

	"gorm.io/datatypes"
)

// GradingSession is one attempt to produce a grade for a submission, by the
// AI pipeline, a lecturer, or both. Sessions are append-only; the only
// mutation after creation is the terminal status transition.
type GradingSession struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SubmissionID uint           `gorm:"not null;index" json:"submission_id"`
	Status       string         `gorm:"size:32;not null" json:"status"`
	GradingType  string         `gorm:"size:32;not null" json:"grading_type"`
	Grade        *float64       `json:"grade"`
	Detail       datatypes.JSON `gorm:"type:jsonb" json:"detail"`
	CreatedAt    time.Time      `json:"created_at"`
}

const (
	// SessionStatusProcessing indicates grading is still in flight.
	SessionStatusProcessing = "processing"
	// SessionStatusCompleted indicates grading finished and produced scores.
	SessionStatusCompleted = "completed"
	// SessionStatusFailed indicates grading aborted without producing scores.
	SessionStatusFailed = "failed"
)

const (
	// GradingTypeAI marks a session produced by the automated pipeline.
	GradingTypeAI = "ai"
	// GradingTypeLecturer marks a session produced by a lecturer.
	GradingTypeLecturer = "lecturer"
	// GradingTypeBoth marks an AI session reviewed and adjusted by a lecturer.
	GradingTypeBoth = "both"
)

// IsCompleted reports whether the session reached the completed terminal state.
func (g GradingSession) IsCompleted() bool {
	return g.Status == SessionStatusCompleted
}

// IsHumanGraded reports whether a lecturer was involved in producing the grade.
func (g GradingSession) IsHumanGraded() bool {
	return g.GradingType == GradingTypeLecturer || g.GradingType == GradingTypeBoth
}
