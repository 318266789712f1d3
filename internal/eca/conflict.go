package eca

import "github.com/lojf/ecaplanner/internal/catalog"

// HasConflict reports whether candidate overlaps, on a shared day, any
// other selected activity that resolves in cat. Unscheduled activities
// never take part on either side.
func HasConflict(candidate catalog.Activity, selected []string, cat *catalog.Catalog) bool {
	_, found := ConflictWith(candidate, selected, cat)
	return found
}

// ConflictWith is HasConflict returning the first blocking activity.
func ConflictWith(candidate catalog.Activity, selected []string, cat *catalog.Catalog) (catalog.Activity, bool) {
	s1, e1, ok := window(candidate)
	if !ok {
		return catalog.Activity{}, false
	}
	for _, day := range candidate.Schedule.Days {
		for _, id := range selected {
			if id == candidate.ID {
				continue
			}
			other, ok := cat.Lookup(id)
			if !ok || !other.Schedule.RunsOn(day) {
				continue
			}
			s2, e2, ok := window(other)
			if !ok {
				continue
			}
			if overlaps(s1, e1, s2, e2) {
				return other, true
			}
		}
	}
	return catalog.Activity{}, false
}
