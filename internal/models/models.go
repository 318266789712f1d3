package models

import (
	"time"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
)

type Guardian struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name  string
	Phone string `gorm:"uniqueIndex;not null"` // unique guardian identity

	Children []Child
}

// Child is a planned child profile. The ID is an opaque uuid so it can be
// shared in links without leaking row counts.
type Child struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time

	GuardianID uint `gorm:"index;not null"`
	Guardian   Guardian

	Name   string
	Gender string // "" | boy | girl
	Year   string // -1 | 0-ey | 0 | 1..13
	Campus string `gorm:"not null;default:chaofa"`

	HasEal       bool
	ShowBoosters bool
	ShowVapp     bool
	ShowAen      bool

	Selections []Selection `gorm:"constraint:OnDelete:CASCADE"`
}

// Selection is one chosen activity id. Position keeps the order in which
// activities were picked.
type Selection struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ChildID    string `gorm:"size:36;not null;uniqueIndex:idx_sel_child_activity"`
	ActivityID string `gorm:"not null;uniqueIndex:idx_sel_child_activity"`
	Position   int
}

func (c Child) Profile() eca.Profile {
	return eca.Profile{
		Gender:       eca.Gender(c.Gender),
		Year:         c.Year,
		HasEal:       c.HasEal,
		ShowBoosters: c.ShowBoosters,
		ShowVapp:     c.ShowVapp,
		ShowAen:      c.ShowAen,
	}
}

func (c Child) CampusKey() catalog.Campus {
	return catalog.ParseCampus(c.Campus)
}

// SelectedIDs returns the activity ids of the loaded selections in pick order.
func (c Child) SelectedIDs() []string {
	out := make([]string, 0, len(c.Selections))
	for _, s := range c.Selections {
		out = append(out, s.ActivityID)
	}
	return out
}
