package eca

import (
	"strings"

	"github.com/lojf/ecaplanner/internal/catalog"
)

type Category string

const (
	CategoryEAL      Category = "eal"
	CategoryBoosters Category = "boosters"
	CategoryVAPP     Category = "vapp"
	CategoryAEN      Category = "aen"
	CategoryOther    Category = "other"
)

type Gender string

const (
	GenderNone Gender = ""
	GenderBoy  Gender = "boy"
	GenderGirl Gender = "girl"
)

// Tags are the derived classification of an activity.
type Tags struct {
	Category Category `json:"category"`
	IsEAL    bool     `json:"isEal"`
	Gender   Gender   `json:"gender,omitempty"`
}

type categoryRule struct {
	match func(id string) bool
	tag   Category
}

func idContains(markers ...string) func(string) bool {
	return func(id string) bool {
		for _, m := range markers {
			if strings.Contains(id, m) {
				return true
			}
		}
		return false
	}
}

// categoryRules is evaluated in order, first match wins. The explicit
// category field is only consulted when no id marker matches.
var categoryRules = []categoryRule{
	{match: idContains("PEAL", "SEAL"), tag: CategoryEAL},
	{match: idContains("BOS"), tag: CategoryBoosters},
	{match: idContains("VAPP"), tag: CategoryVAPP},
	{match: idContains("AEN"), tag: CategoryAEN},
}

// CategoryOf derives the category of an activity.
func CategoryOf(a catalog.Activity) Category {
	for _, r := range categoryRules {
		if r.match(a.ID) {
			return r.tag
		}
	}
	if c := strings.TrimSpace(a.Category); c != "" {
		return Category(c)
	}
	return CategoryOther
}

// GenderOf derives a gender restriction from the activity name.
func GenderOf(a catalog.Activity) Gender {
	name := strings.ToLower(a.Name)
	switch {
	case strings.Contains(name, "girls"):
		return GenderGirl
	case strings.Contains(name, "boys"):
		return GenderBoy
	default:
		return GenderNone
	}
}

func IsEAL(a catalog.Activity) bool {
	return CategoryOf(a) == CategoryEAL
}

func Classify(a catalog.Activity) Tags {
	cat := CategoryOf(a)
	return Tags{
		Category: cat,
		IsEAL:    cat == CategoryEAL,
		Gender:   GenderOf(a),
	}
}

// IsHidden reports whether a gated category is switched off for the child.
func IsHidden(a catalog.Activity, p Profile) bool {
	switch CategoryOf(a) {
	case CategoryEAL:
		return !p.HasEal
	case CategoryBoosters:
		return !p.ShowBoosters
	case CategoryVAPP:
		return !p.ShowVapp
	case CategoryAEN:
		return !p.ShowAen
	default:
		return false
	}
}

// MatchesYear reports whether the activity is offered to the child's year.
func MatchesYear(a catalog.Activity, year string) bool {
	yg := a.YearGroups
	if yg.HasLabel(YearLabel(year)) {
		return true
	}
	if year == YearEarlyYears && yg.HasLabel("Early Years") {
		return true
	}
	if year == YearReception && yg.HasLabel("Reception") {
		return true
	}
	if n, ok := YearNumber(year); ok && yg.HasRange() {
		return n >= *yg.Min && n <= *yg.Max
	}
	return false
}

// Visible combines year eligibility and category gating.
func Visible(a catalog.Activity, p Profile) bool {
	return MatchesYear(a, p.Year) && !IsHidden(a, p)
}

// GenderMismatch is true when both the activity and the child carry a
// gender and they differ.
func GenderMismatch(a catalog.Activity, p Profile) bool {
	g := GenderOf(a)
	return g != GenderNone && p.Gender != GenderNone && g != p.Gender
}
