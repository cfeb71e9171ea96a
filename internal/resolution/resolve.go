package resolution

import "github.com/aksara-labs/gradewise-api/internal/models"

// Resolution statuses. A grade of 0 only means "scored zero" when the status
// is StatusGraded; the other statuses carry 0 as a placeholder.
const (
	StatusNoSubmission = "no-submission"
	StatusUngraded     = "ungraded"
	StatusGraded       = "graded"
)

// Input carries everything needed to resolve one (student, context) pair.
// All lookups are prebuilt by the caller, one map construction per batch,
// so the engine never scans across entities.
type Input struct {
	SubmissionsForStudent  []models.Submission
	SessionsBySubmissionID map[uint][]models.GradingSession
	ItemsBySessionID       map[uint][]models.GradeItem
	RubricMaxByItemID      map[uint]float64
	Context                models.AssessmentContext
}

// Result is the resolved authoritative view of one student's grade.
type Result struct {
	Submission *models.Submission     `json:"submission"`
	Session    *models.GradingSession `json:"session"`
	Grade      float64                `json:"grade"`
	Status     string                 `json:"status"`
}

// Resolve folds the three event streams into one answer: current submission,
// authoritative session, final grade. Missing data never aborts resolution;
// each absence maps to a status the caller can render.
func Resolve(in Input) Result {
	submission := SelectCurrentSubmission(in.SubmissionsForStudent)
	if submission == nil {
		return Result{Status: StatusNoSubmission}
	}

	session := SelectSession(in.SessionsBySubmissionID[submission.ID], in.Context)
	if session == nil {
		return Result{Submission: submission, Status: StatusUngraded}
	}

	grade := AggregateGrade(session, in.ItemsBySessionID[session.ID], in.RubricMaxByItemID)
	return Result{
		Submission: submission,
		Session:    session,
		Grade:      grade,
		Status:     StatusGraded,
	}
}
