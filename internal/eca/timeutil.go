package eca

import (
	"strconv"
	"strings"

	"github.com/lojf/ecaplanner/internal/catalog"
)

// Minutes converts "HH:MM" to minutes since midnight.
func Minutes(hhmm string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(m)
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}
	return hours*60 + mins, true
}

// startMinutes is the activity start in minutes; ok is false for
// unscheduled activities.
func startMinutes(a catalog.Activity) (int, bool) {
	if !a.Scheduled() {
		return 0, false
	}
	return Minutes(a.Schedule.Time.Start)
}

// window returns the half-open [start, end) interval of an activity.
func window(a catalog.Activity) (start, end int, ok bool) {
	start, ok = startMinutes(a)
	if !ok {
		return 0, 0, false
	}
	end, ok = Minutes(a.Schedule.Time.End)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// overlaps reports whether [s1,e1) and [s2,e2) intersect.
func overlaps(s1, e1, s2, e2 int) bool {
	return !(e1 <= s2 || e2 <= s1)
}
