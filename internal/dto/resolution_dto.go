package dto

import (
	"time"

	"github.com/aksara-labs/gradewise-api/internal/resolution"
)

// SubmissionSummary is the resolved current submission as rendered to
// consumers.
type SubmissionSummary struct {
	ID          uint       `json:"id"`
	FileURL     string     `json:"file_url,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// SessionSummary is the authoritative grading session as rendered to
// consumers.
type SessionSummary struct {
	ID          uint      `json:"id"`
	GradingType string    `json:"grading_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResolvedGradeResponse is the engine's answer for one student: the current
// submission, the authoritative session, and the final grade. Grade is only
// meaningful when Status is "graded".
type ResolvedGradeResponse struct {
	StudentID  uint               `json:"student_id"`
	Status     string             `json:"status"`
	Grade      float64            `json:"grade"`
	Submission *SubmissionSummary `json:"submission"`
	Session    *SessionSummary    `json:"session"`
}

// NewResolvedGradeResponse maps an engine result onto the response shape.
func NewResolvedGradeResponse(studentID uint, result resolution.Result) ResolvedGradeResponse {
	response := ResolvedGradeResponse{
		StudentID: studentID,
		Status:    result.Status,
		Grade:     result.Grade,
	}

	if result.Submission != nil {
		response.Submission = &SubmissionSummary{
			ID:          result.Submission.ID,
			FileURL:     result.Submission.FileURL,
			SubmittedAt: result.Submission.SubmittedAt,
			UpdatedAt:   result.Submission.UpdatedAt,
		}
	}

	if result.Session != nil {
		response.Session = &SessionSummary{
			ID:          result.Session.ID,
			GradingType: result.Session.GradingType,
			CreatedAt:   result.Session.CreatedAt,
		}
	}

	return response
}

// RosterSummary aggregates resolution outcomes across a roster, feeding
// dashboard counters.
type RosterSummary struct {
	Graded       int `json:"graded"`
	Ungraded     int `json:"ungraded"`
	NoSubmission int `json:"no_submission"`
}

// RosterResponse is the batch resolution of every student in a grading
// group, for table and export consumers.
type RosterResponse struct {
	GradingGroupID uint                    `json:"grading_group_id"`
	Rows           []ResolvedGradeResponse `json:"rows"`
	Summary        RosterSummary           `json:"summary"`
}
