package importer

import (
	"strings"

	"github.com/lojf/ecaplanner/internal/catalog"
)

type keywordRule struct {
	keywords []string
	value    string
}

func matchRules(s string, rules []keywordRule) (string, bool) {
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(s, k) {
				return r.value, true
			}
		}
	}
	return "", false
}

// Section headings are checked before the programme name.
var sectionCategories = []keywordRule{
	{[]string{"dance"}, "dance"},
	{[]string{"lamda"}, "lamda"},
	{[]string{"robotics"}, "robotics"},
	{[]string{"sport"}, "sports"},
	{[]string{"booster"}, "boosters"},
	{[]string{"vapp"}, "vapp"},
	{[]string{"aen", "additional support"}, "aen"},
	{[]string{"eal", "english as an additional"}, "eal"},
	{[]string{"academ"}, "academies"},
	{[]string{"club"}, "clubs"},
	{[]string{"foundation"}, "foundation"},
}

var nameCategories = []keywordRule{
	{[]string{"dance", "ballet", "hip hop", "jazz", "cheer"}, "dance"},
	{[]string{"lamda"}, "lamda"},
	{[]string{"robot", "bee-bot"}, "robotics"},
	{[]string{"coding", "roblox", "minecraft"}, "coding"},
	{[]string{"chess"}, "chess"},
	{[]string{"judo", "jiu jitsu", "martial"}, "martial_arts"},
	{[]string{"tennis"}, "tennis"},
	{[]string{"football", "soccer"}, "football"},
	{[]string{"basketball"}, "basketball"},
	{[]string{"swimming", "swim", "aqua"}, "swimming"},
	{[]string{"booster"}, "boosters"},
	{[]string{"art"}, "art"},
	{[]string{"music", "choir", "orchestra", "ukulele", "guitar"}, "music"},
	{[]string{"science"}, "science"},
	{[]string{"thai"}, "thai"},
	{[]string{"mandarin", "chinese"}, "mandarin"},
	{[]string{"french"}, "french"},
	{[]string{"russian"}, "russian"},
	{[]string{"lego"}, "lego"},
	{[]string{"book", "story"}, "reading"},
}

func DetermineCategory(name, section string) string {
	if c, ok := matchRules(strings.ToLower(section), sectionCategories); ok {
		return c
	}
	if c, ok := matchRules(strings.ToLower(name), nameCategories); ok {
		return c
	}
	return "other"
}

// DetermineLevel classifies into foundation, primary, secondary or mixed,
// falling back to unknown when nothing gives it away.
func DetermineLevel(name, section string, yg catalog.YearGroups) string {
	if l, ok := matchRules(strings.ToLower(section), []keywordRule{
		{[]string{"foundation"}, "foundation"},
		{[]string{"primary"}, "primary"},
		{[]string{"secondary"}, "secondary"},
	}); ok {
		return l
	}
	lower := strings.ToLower(name)
	if strings.Contains(lower, "early years") || strings.Contains(lower, "preschool") || strings.Contains(lower, "reception") {
		return "foundation"
	}
	if yg.Min == nil {
		return "unknown"
	}
	switch lo := *yg.Min; {
	case lo <= 0:
		return "foundation"
	case lo <= 6 && (yg.Max == nil || *yg.Max <= 6):
		return "primary"
	case lo >= 7:
		return "secondary"
	default:
		return "mixed"
	}
}

var outsideProviders = []keywordRule{
	{[]string{"cyberone", "coding", "roblox", "minecraft", "brain play"}, "cyberone"},
	{[]string{"table tennis"}, "phuket_table_tennis"},
	{[]string{"tennis", "dome"}, "dome_tennis"},
	{[]string{"judo"}, "judo_school"},
	{[]string{"jiu jitsu", "martial"}, "ben_royle_bjj"},
	{[]string{"chess"}, "chess_club"},
	{[]string{"rush", "flag football"}, "rush_sports"},
	{[]string{"formula", "karting"}, "formula_fun"},
	{[]string{"mind craft", "maximise"}, "maximise_child_dev"},
}

// DetermineProvider reads the provider from an "Outside Provider" section
// heading. Everything else is run by the school.
func DetermineProvider(section string) string {
	lower := strings.ToLower(section)
	if !strings.Contains(lower, "outside provider") {
		return "headstart"
	}
	if p, ok := matchRules(lower, outsideProviders); ok {
		return p
	}
	return "outside_provider"
}
