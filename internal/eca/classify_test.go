package eca_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		act  catalog.Activity
		want eca.Category
	}{
		{"primary eal marker", catalog.Activity{ID: "PEAL1"}, eca.CategoryEAL},
		{"secondary eal marker", catalog.Activity{ID: "SEAL2", Category: "music"}, eca.CategoryEAL},
		{"boosters marker", catalog.Activity{ID: "BOS12"}, eca.CategoryBoosters},
		{"vapp marker", catalog.Activity{ID: "VAPP3"}, eca.CategoryVAPP},
		{"aen marker", catalog.Activity{ID: "AEN4"}, eca.CategoryAEN},
		{"eal beats boosters", catalog.Activity{ID: "BOS-PEAL"}, eca.CategoryEAL},
		{"boosters beats vapp", catalog.Activity{ID: "VAPP-BOS"}, eca.CategoryBoosters},
		{"vapp beats aen", catalog.Activity{ID: "AEN-VAPP"}, eca.CategoryVAPP},
		{"marker beats explicit field", catalog.Activity{ID: "AEN7", Category: "sports"}, eca.CategoryAEN},
		{"explicit field", catalog.Activity{ID: "ART1", Category: "art"}, eca.Category("art")},
		{"no marker no field", catalog.Activity{ID: "X1"}, eca.CategoryOther},
		{"markers are case sensitive", catalog.Activity{ID: "peal1"}, eca.CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eca.CategoryOf(tt.act))
		})
	}
}

func TestGenderOf(t *testing.T) {
	assert.Equal(t, eca.GenderGirl, eca.GenderOf(catalog.Activity{Name: "Girls Football U11"}))
	assert.Equal(t, eca.GenderBoy, eca.GenderOf(catalog.Activity{Name: "BOYS basketball"}))
	assert.Equal(t, eca.GenderNone, eca.GenderOf(catalog.Activity{Name: "Chess Club"}))
}

func TestClassify(t *testing.T) {
	tags := eca.Classify(catalog.Activity{ID: "PEAL1", Name: "EAL Girls"})
	assert.Equal(t, eca.Tags{Category: eca.CategoryEAL, IsEAL: true, Gender: eca.GenderGirl}, tags)
}

func TestIsHidden(t *testing.T) {
	all := eca.Profile{HasEal: true, ShowBoosters: true, ShowVapp: true, ShowAen: true}
	none := eca.Profile{}

	for _, id := range []string{"PEAL1", "BOS1", "VAPP1", "AEN1"} {
		a := catalog.Activity{ID: id}
		assert.True(t, eca.IsHidden(a, none), id)
		assert.False(t, eca.IsHidden(a, all), id)
	}
	assert.False(t, eca.IsHidden(catalog.Activity{ID: "ART1"}, none))

	onlyBoosters := eca.Profile{ShowBoosters: true}
	assert.False(t, eca.IsHidden(catalog.Activity{ID: "BOS1"}, onlyBoosters))
	assert.True(t, eca.IsHidden(catalog.Activity{ID: "VAPP1"}, onlyBoosters))
}

func TestMatchesYear(t *testing.T) {
	tests := []struct {
		name string
		yg   catalog.YearGroups
		year string
		want bool
	}{
		{"early years label", labels("Early Years"), eca.YearEarlyYears, true},
		{"early years vs reception label", labels("Reception"), eca.YearEarlyYears, false},
		{"early years vs 1-6", years(1, 6), eca.YearEarlyYears, false},
		{"reception label", labels("Reception"), eca.YearReception, true},
		{"preschool label", labels("Preschool"), eca.YearPreschool, true},
		{"preschool in range", years(-1, 0), eca.YearPreschool, true},
		{"exact year label", labels("Year 7"), "7", true},
		{"range inclusive low", years(1, 6), "1", true},
		{"range inclusive high", years(1, 6), "6", true},
		{"range outside", years(1, 6), "7", false},
		{"half open range ignored", catalog.YearGroups{Min: intPtr(1)}, "3", false},
		{"nothing declared", catalog.YearGroups{}, "3", false},
		{"garbage year", years(1, 6), "abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eca.MatchesYear(catalog.Activity{YearGroups: tt.yg}, tt.year))
		})
	}
}

func TestYearLabelAndNumber(t *testing.T) {
	assert.Equal(t, "Preschool", eca.YearLabel("-1"))
	assert.Equal(t, "Early Years", eca.YearLabel("0-ey"))
	assert.Equal(t, "Reception", eca.YearLabel("0"))
	assert.Equal(t, "Year 9", eca.YearLabel("9"))

	n, ok := eca.YearNumber("0-ey")
	assert.True(t, ok)
	assert.Equal(t, 0, n)
	n, ok = eca.YearNumber("-1")
	assert.True(t, ok)
	assert.Equal(t, -1, n)
	_, ok = eca.YearNumber("")
	assert.False(t, ok)
}

func TestGenderMismatch(t *testing.T) {
	girls := catalog.Activity{Name: "Girls Netball"}
	assert.True(t, eca.GenderMismatch(girls, eca.Profile{Gender: eca.GenderBoy}))
	assert.False(t, eca.GenderMismatch(girls, eca.Profile{Gender: eca.GenderGirl}))
	assert.False(t, eca.GenderMismatch(girls, eca.Profile{}))
	assert.False(t, eca.GenderMismatch(catalog.Activity{Name: "Chess"}, eca.Profile{Gender: eca.GenderBoy}))
}
