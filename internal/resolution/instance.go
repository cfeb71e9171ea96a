package resolution

import "github.com/aksara-labs/gradewise-api/internal/models"

// GroupKey identifies one logical teaching assignment: a lecturer grading one
// template in one semester, regardless of how many GradingGroup rows were
// created for it.
type GroupKey struct {
	SemesterCode         string
	AssessmentTemplateID uint
	LecturerID           uint
}

// KeyForGroup derives the logical key of a grading group row.
func KeyForGroup(group models.GradingGroup) GroupKey {
	return GroupKey{
		SemesterCode:         group.SemesterCode,
		AssessmentTemplateID: group.AssessmentTemplateID,
		LecturerID:           group.LecturerID,
	}
}

// CanonicalizeGroups collapses duplicate grading group rows into one
// canonical row per logical key: the most recently created, ties broken by
// the higher ID. Older duplicates stay valid as submission containers; see
// ExpandGroups.
func CanonicalizeGroups(groups []models.GradingGroup) map[GroupKey]models.GradingGroup {
	canonical := make(map[GroupKey]models.GradingGroup, len(groups))
	for _, group := range groups {
		key := KeyForGroup(group)
		current, exists := canonical[key]
		if !exists || groupNewer(group, current) {
			canonical[key] = group
		}
	}
	return canonical
}

// ExpandGroups returns the IDs of every grading group row sharing the key,
// canonical and superseded alike. Callers aggregating submissions across
// history (unique student counts, roster totals) must query all of them;
// only the canonical row is used for identity and display.
func ExpandGroups(groups []models.GradingGroup, key GroupKey) []uint {
	ids := make([]uint, 0, len(groups))
	for _, group := range groups {
		if KeyForGroup(group) == key {
			ids = append(ids, group.ID)
		}
	}
	return ids
}

func groupNewer(a, b models.GradingGroup) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
