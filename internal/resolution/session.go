package resolution

import "github.com/aksara-labs/gradewise-api/internal/models"

// SelectSession picks the authoritative grading session for a submission
// under the precedence policy of the given assessment context. Only completed
// sessions are eligible; with none, the submission is not yet graded and the
// result is nil.
//
// The policy encodes who has the last word:
//
//   - published lab: lecturer/both outranks AI, AI outranks anything else.
//   - unpublished lab: AI outranks everything, so students keep getting the
//     instant formative feedback until the lecturer publishes.
//   - assignments, practical exams, and any other context: lecturer/both
//     outranks everything.
//
// A "both" session embeds the lecturer's judgement, so it shares the
// lecturer bucket rather than dominating or yielding to it. Within a bucket
// the most recently created session wins, ID breaking exact ties.
func SelectSession(sessions []models.GradingSession, ctx models.AssessmentContext) *models.GradingSession {
	completed := make([]int, 0, len(sessions))
	for i := range sessions {
		if sessions[i].IsCompleted() {
			completed = append(completed, i)
		}
	}
	if len(completed) == 0 {
		return nil
	}

	for _, bucket := range precedenceBuckets(ctx) {
		if idx := newestMatching(sessions, completed, bucket); idx >= 0 {
			return &sessions[idx]
		}
	}

	// No bucket matched; fall back to the newest completed session.
	return &sessions[newestMatching(sessions, completed, nil)]
}

// precedenceBuckets returns the ordered preference filters for a context.
func precedenceBuckets(ctx models.AssessmentContext) []func(models.GradingSession) bool {
	human := models.GradingSession.IsHumanGraded
	ai := func(s models.GradingSession) bool { return s.GradingType == models.GradingTypeAI }

	if ctx.IsLab() {
		if ctx.IsPublished {
			return []func(models.GradingSession) bool{human, ai}
		}
		return []func(models.GradingSession) bool{ai}
	}
	return []func(models.GradingSession) bool{human}
}

// newestMatching returns the index of the most recently created session among
// candidates satisfying match (nil match accepts all), or -1 when none do.
func newestMatching(sessions []models.GradingSession, candidates []int, match func(models.GradingSession) bool) int {
	best := -1
	for _, i := range candidates {
		if match != nil && !match(sessions[i]) {
			continue
		}
		if best < 0 || sessionNewer(sessions[i], sessions[best]) {
			best = i
		}
	}
	return best
}

func sessionNewer(a, b models.GradingSession) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
