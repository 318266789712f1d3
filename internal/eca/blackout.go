package eca

import "github.com/lojf/ecaplanner/internal/catalog"

// BlackoutStart is the start time of every language-support session.
const BlackoutStart = "15:30"

var (
	primaryEALDays  = []string{"Monday", "Thursday"}
	lowerSecEALDays = []string{"Monday", "Tuesday"}
	upperSecEALDays = []string{"Thursday"}
)

// ealSchedule maps a numeric year to the weekdays reserved for
// language-support instruction.
var ealSchedule = map[int][]string{
	1: primaryEALDays, 2: primaryEALDays, 3: primaryEALDays,
	4: primaryEALDays, 5: primaryEALDays, 6: primaryEALDays,
	7: lowerSecEALDays, 8: lowerSecEALDays, 9: lowerSecEALDays,
	10: upperSecEALDays, 11: upperSecEALDays,
}

// BlockedDays returns the reserved weekdays for a child enrolled in
// language support, or nil.
func BlockedDays(p Profile) []string {
	if !p.HasEal {
		return nil
	}
	n, ok := YearNumber(p.Year)
	if !ok {
		return nil
	}
	days := ealSchedule[n]
	out := make([]string, len(days))
	copy(out, days)
	return out
}

// IsBlackoutDay reports whether day is reserved for the child.
func IsBlackoutDay(p Profile, day string) bool {
	for _, d := range BlockedDays(p) {
		if d == day {
			return true
		}
	}
	return false
}

// IsBlockedSlot reports whether a non-support activity sits in the
// child's reserved 15:30 slot on one of the blocked days.
func IsBlockedSlot(a catalog.Activity, p Profile) bool {
	if !p.HasEal || IsEAL(a) {
		return false
	}
	if a.Schedule.Time.Start != BlackoutStart {
		return false
	}
	for _, day := range a.Schedule.Days {
		if IsBlackoutDay(p, day) {
			return true
		}
	}
	return false
}
