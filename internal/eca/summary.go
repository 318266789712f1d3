package eca

import (
	"sort"

	"github.com/lojf/ecaplanner/internal/catalog"
)

type ScheduledDay struct {
	Day        string             `json:"day"`
	Activities []catalog.Activity `json:"activities"`
}

// ChildSummary is the cost and weekly timetable of one child's picks.
type ChildSummary struct {
	ChildID string         `json:"childId"`
	Name    string         `json:"name,omitempty"`
	Cost    Cost           `json:"cost"`
	Days    []ScheduledDay `json:"days"`
}

// SelectionSet is one child's selection against its campus catalog.
type SelectionSet struct {
	ChildID  string
	Name     string
	Selected []string
	Catalog  *catalog.Catalog
}

// Summarize prices a selection and groups the resolvable picks by day.
func (p Pricing) Summarize(set SelectionSet) ChildSummary {
	byDay := make(map[string][]catalog.Activity)
	for _, id := range set.Selected {
		a, ok := set.Catalog.Lookup(id)
		if !ok {
			continue
		}
		for _, day := range a.Schedule.Days {
			byDay[day] = append(byDay[day], a)
		}
	}

	var days []ScheduledDay
	for _, day := range Weekdays {
		acts := byDay[day]
		if len(acts) == 0 {
			continue
		}
		sort.SliceStable(acts, func(i, j int) bool { return sortKey(acts[i]) < sortKey(acts[j]) })
		days = append(days, ScheduledDay{Day: day, Activities: acts})
	}

	return ChildSummary{
		ChildID: set.ChildID,
		Name:    set.Name,
		Cost:    p.Compute(set.Selected, set.Catalog),
		Days:    days,
	}
}

// FamilySummary aggregates every child of a guardian.
type FamilySummary struct {
	TotalCost              int            `json:"totalCost"`
	ChildrenWithSelections int            `json:"childrenWithSelections"`
	Children               []ChildSummary `json:"children"`
}

// Aggregate sums the children that have at least one selected id. Stale
// ids still count toward "has a selection" but contribute no cost.
func (p Pricing) Aggregate(sets []SelectionSet) FamilySummary {
	out := FamilySummary{Children: []ChildSummary{}}
	for _, set := range sets {
		if len(set.Selected) == 0 {
			continue
		}
		s := p.Summarize(set)
		out.TotalCost += s.Cost.TotalCost
		out.ChildrenWithSelections++
		out.Children = append(out.Children, s)
	}
	return out
}
