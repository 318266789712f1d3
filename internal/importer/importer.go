// Package importer converts the school's ECA spreadsheet export (CSV) into
// a catalog document.
package importer

import (
	"encoding/csv"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/lojf/ecaplanner/internal/catalog"
)

// Column layout of the export. Rows with fewer than minColumns are noise.
const (
	colID = iota
	colSection
	colProgramme
	colFee
	colTeacher
	colDay
	colLocation
	colTime
	colCapacity

	minColumns = 8
)

// ParseCSV reads every activity row. Heading rows update the current
// section, which is recorded on the activities that follow and feeds the
// category, level and provider derivation. Duplicate ids are kept; see
// Dedupe.
func ParseCSV(r io.Reader) ([]catalog.Activity, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		out     []catalog.Activity
		section string
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read csv")
		}
		if len(row) < minColumns {
			continue
		}
		col := func(i int) string {
			if i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		id, heading, programme := col(colID), col(colSection), col(colProgramme)

		if isHeading(programme) {
			if heading != "" {
				section = heading
			}
			if strings.Contains(programme, "HeadStart") {
				section = programme
			}
			continue
		}
		if heading != "" && id == "" {
			section = heading
			continue
		}
		if id == "" || programme == notAvailable {
			continue
		}

		out = append(out, buildActivity(id, programme, section, col))
	}
	return out, nil
}

func isHeading(programme string) bool {
	switch strings.ToLower(programme) {
	case "", "programme", "headstart ecas:":
		return true
	}
	return strings.HasPrefix(programme, "HeadStart ECAs:")
}

func buildActivity(id, programme, section string, col func(int) string) catalog.Activity {
	fee, free := ParseFee(col(colFee))
	yg := ParseYearGroups(programme)
	location := col(colLocation)
	if location == notAvailable {
		location = ""
	}
	return catalog.Activity{
		ID:           id,
		Name:         CleanName(programme),
		NameOriginal: programme,
		Category:     DetermineCategory(programme, section),
		Level:        DetermineLevel(programme, section, yg),
		Fee:          fee,
		IsFree:       free,
		YearGroups:   yg,
		Schedule: catalog.Schedule{
			Days: ParseDays(col(colDay)),
			Time: ParseTime(col(colTime)),
		},
		Location:   location,
		Teachers:   ParseTeachers(col(colTeacher)),
		Capacity:   ParseCapacity(col(colCapacity)),
		InviteOnly: IsInviteOnly(programme),
		Provider:   DetermineProvider(section),
		Section:    section,
	}
}

// Dedupe keeps the first activity per id and reports how many were dropped.
func Dedupe(acts []catalog.Activity) ([]catalog.Activity, int) {
	seen := make(map[string]bool, len(acts))
	out := make([]catalog.Activity, 0, len(acts))
	for _, a := range acts {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	return out, len(acts) - len(out)
}

// Stats counts a document's activities per category and level.
type Stats struct {
	Duplicates int
	Free       int
	Paid       int
	Categories map[string]int
	Levels     map[string]int
}

// Counted is a key with its count, for sorted reporting.
type Counted struct {
	Key   string
	Count int
}

// ByCount orders m by count descending, then key.
func ByCount(m map[string]int) []Counted {
	out := make([]Counted, 0, len(m))
	for k, n := range m {
		out = append(out, Counted{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

type Options struct {
	Source string
	Term   string
}

var DefaultOptions = Options{
	Source: "HeadStart ECA Chaofah City Campus",
	Term:   "Term 2&3 2025-2026",
}

// BuildDocument dedupes acts and wraps them with meta, category and level
// labels.
func BuildDocument(acts []catalog.Activity, opts Options) (catalog.Document, Stats) {
	acts, dups := Dedupe(acts)
	st := Stats{Duplicates: dups, Categories: map[string]int{}, Levels: map[string]int{}}
	for _, a := range acts {
		st.Categories[a.Category]++
		st.Levels[a.Level]++
		if a.IsFree {
			st.Free++
		} else {
			st.Paid++
		}
	}
	doc := catalog.Document{
		Meta: catalog.Meta{
			Source:          opts.Source,
			Term:            opts.Term,
			TotalActivities: len(acts),
			FreeActivities:  st.Free,
			PaidActivities:  st.Paid,
		},
		Categories: copyLabels(CategoryLabels),
		Levels:     copyLabels(LevelLabels),
		Activities: acts,
	}
	return doc, st
}

func copyLabels(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var CategoryLabels = map[string]string{
	"clubs":        "Clubs",
	"sports":       "Sports",
	"football":     "Football",
	"basketball":   "Basketball",
	"swimming":     "Swimming",
	"tennis":       "Tennis",
	"martial_arts": "Martial Arts",
	"boosters":     "Boosters",
	"vapp":         "Gifted & Talented (VAPP)",
	"aen":          "Additional Support",
	"eal":          "English as an Additional Language",
	"academies":    "Academies",
	"dance":        "Dance",
	"lamda":        "LAMDA (Drama & Speech)",
	"music":        "Music",
	"art":          "Art",
	"science":      "Science",
	"coding":       "Coding",
	"robotics":     "Robotics",
	"chess":        "Chess",
	"lego":         "Lego",
	"reading":      "Reading",
	"thai":         "Thai",
	"mandarin":     "Mandarin",
	"french":       "French",
	"russian":      "Russian",
	"foundation":   "Foundation",
	"other":        "Other",
}

var LevelLabels = map[string]string{
	"foundation": "Foundation (Early Years, Reception)",
	"primary":    "Primary (Years 1-6)",
	"secondary":  "Secondary (Years 7-13)",
	"mixed":      "Mixed",
}
