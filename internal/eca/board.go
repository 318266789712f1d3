package eca

import (
	"sort"

	"github.com/lojf/ecaplanner/internal/catalog"
)

// Weekdays are the days an activity can recur on, in board order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type BoardDay struct {
	Day        string              `json:"day"`
	Blackout   bool                `json:"blackout"`
	Activities []AnnotatedActivity `json:"activities"`
}

// Board lays out the child's visible activities per weekday, filtered by
// slot and sorted by start time with unscheduled activities last. Empty
// days are omitted.
func Board(p Profile, selected []string, cat *catalog.Catalog, slot Slot) []BoardDay {
	visible := AnnotateVisible(p, selected, cat)

	var days []BoardDay
	for _, day := range Weekdays {
		var acts []AnnotatedActivity
		for _, aa := range visible {
			if !aa.Activity.Schedule.RunsOn(day) || !MatchesTimeSlot(aa.Activity, slot, day) {
				continue
			}
			acts = append(acts, aa)
		}
		if len(acts) == 0 {
			continue
		}
		sort.SliceStable(acts, func(i, j int) bool {
			return sortKey(acts[i].Activity) < sortKey(acts[j].Activity)
		})
		days = append(days, BoardDay{
			Day:        day,
			Blackout:   IsBlackoutDay(p, day),
			Activities: acts,
		})
	}
	return days
}

// sortKey orders by start minute, pushing unscheduled activities to the end.
func sortKey(a catalog.Activity) int {
	if m, ok := startMinutes(a); ok {
		return m
	}
	return 24 * 60
}
