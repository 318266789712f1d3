package importer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lojf/ecaplanner/internal/catalog"
)

const notAvailable = "#N/A"

var (
	reYearRange   = regexp.MustCompile(`(?i)Years?\s+(\d+)\s+(?:to|&)\s+(\d+)`)
	reYearSingle  = regexp.MustCompile(`(?i)Year\s+(\d+)`)
	reAgeGroup    = regexp.MustCompile(`U(\d+)`)
	reFirstNumber = regexp.MustCompile(`(\d+)`)
	reTimeRange   = regexp.MustCompile(`(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)
	reCapacity    = regexp.MustCompile(`(\d+)[-–](\d+)`)
	reDaySplit    = regexp.MustCompile(`[/&,]|\band\b`)
	reInviteOnly  = regexp.MustCompile(`(?i)\*?\s*Invite\s+Only\s*\*?`)
)

func blank(s string) bool {
	return s == "" || s == notAvailable
}

func intPtr(n int) *int { return &n }

// ParseYearGroups reads the year groups out of a programme name, e.g.
// "Football Years 3 to 6", "Reception Art", "Swim Squad U11".
func ParseYearGroups(name string) catalog.YearGroups {
	yg := catalog.YearGroups{Labels: []string{}}
	lower := strings.ToLower(name)

	widen := func(lo, hi int) {
		if yg.Min == nil || lo < *yg.Min {
			yg.Min = intPtr(lo)
		}
		if yg.Max == nil || hi > *yg.Max {
			yg.Max = intPtr(hi)
		}
	}
	addLabel := func(l string) {
		for _, have := range yg.Labels {
			if have == l {
				return
			}
		}
		yg.Labels = append(yg.Labels, l)
	}

	if strings.Contains(lower, "early years") {
		addLabel("Early Years")
		yg.Min, yg.Max = intPtr(0), intPtr(0)
	}
	if strings.Contains(lower, "preschool") {
		addLabel("Preschool")
		if yg.Min == nil {
			yg.Min, yg.Max = intPtr(-1), intPtr(-1)
		}
	}
	if strings.Contains(lower, "reception") {
		addLabel("Reception")
		if yg.Min == nil || *yg.Min > 0 {
			yg.Min = intPtr(0)
		}
		if yg.Max == nil || *yg.Max < 0 {
			yg.Max = intPtr(0)
		}
	}

	// first "Years X to Y" / "Years X & Y" only
	if m := reYearRange.FindStringSubmatch(name); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		widen(lo, hi)
		for y := lo; y <= hi; y++ {
			addLabel("Year " + strconv.Itoa(y))
		}
	}

	// "Year X" not followed by "to", "&" or another digit
	for _, loc := range reYearSingle.FindAllStringSubmatchIndex(name, -1) {
		if startsRange(name[loc[1]:]) {
			continue
		}
		y, _ := strconv.Atoi(name[loc[2]:loc[3]])
		widen(y, y)
		addLabel("Year " + strconv.Itoa(y))
	}

	// U9, U11, ...: sport age groups, roughly age minus six
	for _, m := range reAgeGroup.FindAllStringSubmatch(name, -1) {
		age, _ := strconv.Atoi(m[1])
		approx := age - 6
		if approx < 1 {
			approx = 1
		}
		if yg.Min == nil || approx < *yg.Min {
			yg.Min = intPtr(approx)
		}
		addLabel("U" + strconv.Itoa(age))
	}

	sort.SliceStable(yg.Labels, func(i, j int) bool {
		return labelOrder(yg.Labels[i]) < labelOrder(yg.Labels[j])
	})
	yg.Raw = name
	return yg
}

func startsRange(rest string) bool {
	rest = strings.TrimLeft(rest, " \t\r\n\f\v")
	if rest == "" {
		return false
	}
	if rest[0] == '&' || (rest[0] >= '0' && rest[0] <= '9') {
		return true
	}
	return len(rest) >= 2 && strings.EqualFold(rest[:2], "to")
}

func labelOrder(label string) int {
	switch label {
	case "Preschool":
		return -2
	case "Early Years":
		return -1
	case "Reception":
		return 0
	}
	if m := reFirstNumber.FindString(label); m != "" {
		n, _ := strconv.Atoi(m)
		return n
	}
	return 100
}

var dayNames = []struct{ key, day string }{
	{"mon", "Monday"},
	{"tue", "Tuesday"},
	{"wed", "Wednesday"},
	{"thu", "Thursday"},
	{"fri", "Friday"},
	{"sat", "Saturday"},
	{"sun", "Sunday"},
}

var dayOrder = map[string]int{
	"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3, "Friday": 4, "Saturday": 5, "Sunday": 6,
}

// ParseDays reads "Mon / Thu", "Tuesday & Friday", "Wed and Fri" into full
// day names in week order.
func ParseDays(s string) []string {
	days := []string{}
	if blank(s) {
		return days
	}
	seen := map[string]bool{}
	for _, part := range reDaySplit.Split(s, -1) {
		part = strings.ToLower(strings.TrimSpace(part))
		for _, d := range dayNames {
			if strings.Contains(part, d.key) {
				if !seen[d.day] {
					seen[d.day] = true
					days = append(days, d.day)
				}
				break
			}
		}
	}
	sort.SliceStable(days, func(i, j int) bool { return dayOrder[days[i]] < dayOrder[days[j]] })
	return days
}

// ParseTime reads "3.30 - 4.20", "15:30–16:20" into zero-padded HH:MM.
// Unparseable input keeps only Raw.
func ParseTime(s string) catalog.TimeRange {
	if blank(s) {
		return catalog.TimeRange{Raw: s}
	}
	norm := strings.NewReplacer("–", "-", "—", "-", ".", ":").Replace(s)
	m := reTimeRange.FindStringSubmatch(norm)
	if m == nil {
		return catalog.TimeRange{Raw: norm}
	}
	return catalog.TimeRange{Start: padHour(m[1]), End: padHour(m[2]), Raw: norm}
}

func padHour(t string) string {
	if i := strings.IndexByte(t, ':'); i == 1 {
		return "0" + t
	}
	return t
}

// ParseCapacity reads "8 - 16" into min and max.
func ParseCapacity(s string) catalog.Capacity {
	if blank(s) {
		return catalog.Capacity{}
	}
	m := reCapacity.FindStringSubmatch(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if m == nil {
		return catalog.Capacity{}
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	return catalog.Capacity{Min: intPtr(lo), Max: intPtr(hi)}
}

// ParseFee returns the term fee and whether the activity is free. Empty,
// #N/A, zero and unparseable fees are free.
func ParseFee(s string) (fee int, free bool) {
	if blank(s) {
		return 0, true
	}
	s = strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(s))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	fee = int(f)
	return fee, fee == 0
}

// ParseTeachers splits on commas outside parentheses.
func ParseTeachers(s string) []string {
	out := []string{}
	if blank(s) {
		return out
	}
	var cur strings.Builder
	depth := 0
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			out = append(out, t)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case r == ',' && depth == 0:
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}

func IsInviteOnly(name string) bool {
	return strings.Contains(strings.ToLower(name), "invite only")
}

// CleanName drops invite-only markers and collapses whitespace.
func CleanName(name string) string {
	name = reInviteOnly.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}
