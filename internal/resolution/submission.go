// Package resolution implements the grade resolution engine: given a
// student's raw submission history, the grading sessions attached to it, and
// itemized rubric scores, it deterministically picks one current submission,
// one authoritative grading session, and one final numeric grade.
//
// Every function in the package is pure and synchronous. Missing or
// malformed data degrades to a documented fallback; nothing here returns an
// error or panics. Inputs are never mutated, so the same input always
// produces the same output and callers may parallelize across students
// freely.
package resolution

import "github.com/aksara-labs/gradewise-api/internal/models"

// SelectCurrentSubmission collapses a student's submission history for one
// assessment context into the single current submission. The most recent row
// wins, ordered by UpdatedAt falling back to SubmittedAt; rows with neither
// timestamp sort at the zero time. Equal timestamps are broken by the higher
// ID, which is the more recently created row. Returns nil for an empty
// history.
func SelectCurrentSubmission(submissions []models.Submission) *models.Submission {
	best := -1
	for i := range submissions {
		if best < 0 || submissionNewer(submissions[i], submissions[best]) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return &submissions[best]
}

func submissionNewer(a, b models.Submission) bool {
	ka, kb := a.RecencyKey(), b.RecencyKey()
	if !ka.Equal(kb) {
		return ka.After(kb)
	}
	return a.ID > b.ID
}
