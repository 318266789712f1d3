package eca_test

import "github.com/lojf/ecaplanner/internal/catalog"

func intPtr(n int) *int { return &n }

func years(min, max int) catalog.YearGroups {
	return catalog.YearGroups{Min: intPtr(min), Max: intPtr(max)}
}

func labels(ls ...string) catalog.YearGroups {
	return catalog.YearGroups{Labels: ls}
}

func sched(start, end string, days ...string) catalog.Schedule {
	return catalog.Schedule{Days: days, Time: catalog.TimeRange{Start: start, End: end}}
}

func free(id string, s catalog.Schedule) catalog.Activity {
	return catalog.Activity{ID: id, Name: id, IsFree: true, YearGroups: years(1, 6), Schedule: s}
}

func paid(id string, fee int, s catalog.Schedule) catalog.Activity {
	return catalog.Activity{ID: id, Name: id, Fee: fee, YearGroups: years(1, 6), Schedule: s}
}

func newCatalog(acts ...catalog.Activity) *catalog.Catalog {
	return catalog.New(catalog.Meta{}, acts)
}
