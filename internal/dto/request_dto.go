package dto

// AssessmentGradeRequest identifies one student's grade in a class
// assessment.
type AssessmentGradeRequest struct {
	ClassAssessmentID uint `validate:"required"`
	StudentID         uint `validate:"required"`
}

// GroupGradeRequest identifies one student's grade in a grading group.
type GroupGradeRequest struct {
	GradingGroupID uint `validate:"required"`
	StudentID      uint `validate:"required"`
}

// RosterRequest identifies a grading group whose full roster is resolved.
type RosterRequest struct {
	GradingGroupID uint `validate:"required"`
}

// GroupListRequest narrows the canonical grading group listing.
type GroupListRequest struct {
	Semester string `validate:"omitempty,alphanum,max=16"`
}
