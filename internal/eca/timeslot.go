package eca

import (
	"strings"

	"github.com/lojf/ecaplanner/internal/catalog"
)

// Slot is a named time-of-day filter for the day board.
type Slot string

const (
	SlotAll         Slot = "all"
	SlotAfterSchool Slot = "after-school"
	SlotExtended    Slot = "extended"
	SlotEarly       Slot = "early"
)

var Slots = []Slot{SlotAll, SlotAfterSchool, SlotExtended, SlotEarly}

const (
	afterSchoolStart       = 15*60 + 30
	fridayAfterSchoolStart = 15*60 + 10
	extendedFrom           = 16*60 + 30
	earlyBefore            = 15 * 60
)

// ParseSlot maps a query value to a slot; unknown values mean "all".
func ParseSlot(s string) Slot {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sl := range Slots {
		if string(sl) == s {
			return sl
		}
	}
	return SlotAll
}

// MatchesTimeSlot reports whether the activity belongs in slot on day.
// Unscheduled activities match every slot.
func MatchesTimeSlot(a catalog.Activity, slot Slot, day string) bool {
	if slot == SlotAll {
		return true
	}
	start, ok := startMinutes(a)
	if !ok {
		return true
	}
	switch slot {
	case SlotAfterSchool:
		// Friday sessions start early, the 15:10 start is accepted on any day.
		return start == afterSchoolStart || start == fridayAfterSchoolStart
	case SlotExtended:
		return start >= extendedFrom
	case SlotEarly:
		return start < earlyBefore
	default:
		return true
	}
}
