package resolution

import (
	"math"
	"sort"

	"github.com/aksara-labs/gradewise-api/internal/models"
)

// AggregateGrade computes the final numeric grade for a selected session from
// its itemized rubric scores, normalized to a 0–10 scale.
//
// A session may accumulate several GradeItem rows for the same rubric item as
// corrections land; only the latest per rubric item counts. The grade is then
// total/max scaled to 10 when rubric maxima are known. Sessions without
// rubric linkage fall back to the legacy raw-score/10 scale, and sessions
// that never produced items at all fall back to the session-level scalar
// grade. The result is always finite and non-negative.
func AggregateGrade(session *models.GradingSession, items []models.GradeItem, rubricMaxByItemID map[uint]float64) float64 {
	deduped := latestPerRubricItem(items)

	var totalScore, maxScore float64
	for _, item := range deduped {
		totalScore += item.Score
		maxScore += rubricMaxByItemID[item.RubricItemID]
	}

	var grade float64
	switch {
	case maxScore > 0:
		grade = roundTo(totalScore/maxScore*10, 2)
	case totalScore > 0:
		grade = totalScore / 10
	case len(items) == 0 && session != nil && session.Grade != nil:
		grade = *session.Grade
	}

	if math.IsNaN(grade) || math.IsInf(grade, 0) || grade < 0 {
		return 0
	}
	return grade
}

// latestPerRubricItem keeps the most recent grade item per rubric item,
// ordered by UpdatedAt then CreatedAt descending.
func latestPerRubricItem(items []models.GradeItem) []models.GradeItem {
	ordered := make([]models.GradeItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].UpdatedAt.Equal(ordered[j].UpdatedAt) {
			return ordered[i].UpdatedAt.After(ordered[j].UpdatedAt)
		}
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	seen := make(map[uint]bool, len(ordered))
	deduped := ordered[:0]
	for _, item := range ordered {
		if seen[item.RubricItemID] {
			continue
		}
		seen[item.RubricItemID] = true
		deduped = append(deduped, item)
	}
	return deduped
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
