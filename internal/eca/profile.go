// Package eca holds the planner rules: which activities a child can see and
// pick, which picks collide, and what a selection costs. Every function here
// is a pure read of (catalog, profile, selection).
package eca

import (
	"strconv"
	"strings"
)

// Year codes as stored on a child record.
const (
	YearPreschool  = "-1"
	YearEarlyYears = "0-ey"
	YearReception  = "0"
)

// YearCodes lists every accepted year code in display order.
var YearCodes = []string{
	YearPreschool, YearEarlyYears, YearReception,
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13",
}

// Profile is the part of a child record the rules depend on.
type Profile struct {
	Gender       Gender
	Year         string
	HasEal       bool
	ShowBoosters bool
	ShowVapp     bool
	ShowAen      bool
}

// YearLabel maps a year code to the label used in catalog year groups.
func YearLabel(year string) string {
	switch year {
	case YearPreschool:
		return "Preschool"
	case YearEarlyYears:
		return "Early Years"
	case YearReception:
		return "Reception"
	default:
		return "Year " + year
	}
}

// YearNumber maps a year code onto the numeric scale used by year-group
// ranges. ok is false when the code is not a number.
func YearNumber(year string) (n int, ok bool) {
	switch year {
	case YearPreschool:
		return -1, true
	case YearEarlyYears:
		return 0, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidYear reports whether year is one of YearCodes.
func ValidYear(year string) bool {
	for _, y := range YearCodes {
		if y == year {
			return true
		}
	}
	return false
}
