package dto

import (
	"time"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// CanonicalGroupResponse is one logical teaching assignment: the canonical
// grading group row plus the historical duplicates folded into it.
type CanonicalGroupResponse struct {
	ID                   uint      `json:"id"`
	SemesterCode         string    `json:"semester_code"`
	AssessmentTemplateID uint      `json:"assessment_template_id"`
	LecturerID           uint      `json:"lecturer_id"`
	CreatedAt            time.Time `json:"created_at"`
	AllGroupIDs          []uint    `json:"all_group_ids"`
	StudentCount         int       `json:"student_count"`
}

// NewCanonicalGroupResponse maps a canonical group and its expansion onto
// the response shape.
func NewCanonicalGroupResponse(group models.GradingGroup, allIDs []uint, studentCount int) CanonicalGroupResponse {
	return CanonicalGroupResponse{
		ID:                   group.ID,
		SemesterCode:         group.SemesterCode,
		AssessmentTemplateID: group.AssessmentTemplateID,
		LecturerID:           group.LecturerID,
		CreatedAt:            group.CreatedAt,
		AllGroupIDs:          allIDs,
		StudentCount:         studentCount,
	}
}
