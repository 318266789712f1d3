package eca

import "github.com/lojf/ecaplanner/internal/catalog"

// BlockReason explains why a visible activity cannot be picked.
type BlockReason string

const (
	BlockNone           BlockReason = "none"
	BlockConflict       BlockReason = "conflict"
	BlockBlackout       BlockReason = "blackout"
	BlockGenderMismatch BlockReason = "genderMismatch"
)

// Annotation is the per-activity verdict for one child.
type Annotation struct {
	Visible     bool        `json:"visible"`
	Selectable  bool        `json:"selectable"`
	Selected    bool        `json:"selected"`
	BlockReason BlockReason `json:"blockReason"`
}

// Annotate evaluates one activity for a child. Conflicts are checked only
// for activities not yet selected, so an existing pick is never
// invalidated. When several reasons apply, gender mismatch wins over
// blackout, and blackout over conflict.
func Annotate(a catalog.Activity, p Profile, selected []string, cat *catalog.Catalog) Annotation {
	ann := Annotation{
		Visible:     Visible(a, p),
		Selected:    Contains(selected, a.ID),
		BlockReason: BlockNone,
	}
	if !ann.Visible {
		return ann
	}

	switch {
	case GenderMismatch(a, p):
		ann.BlockReason = BlockGenderMismatch
	case IsBlockedSlot(a, p):
		ann.BlockReason = BlockBlackout
	case !ann.Selected && HasConflict(a, selected, cat):
		ann.BlockReason = BlockConflict
	}
	ann.Selectable = ann.BlockReason == BlockNone
	return ann
}

// AnnotatedActivity pairs an activity with its derived tags and verdict.
type AnnotatedActivity struct {
	Activity   catalog.Activity `json:"activity"`
	Tags       Tags             `json:"tags"`
	Annotation Annotation       `json:"annotation"`
}

// AnnotateVisible returns every visible activity of cat, in catalog order.
func AnnotateVisible(p Profile, selected []string, cat *catalog.Catalog) []AnnotatedActivity {
	var out []AnnotatedActivity
	for _, a := range cat.Activities() {
		ann := Annotate(a, p, selected, cat)
		if !ann.Visible {
			continue
		}
		out = append(out, AnnotatedActivity{Activity: a, Tags: Classify(a), Annotation: ann})
	}
	return out
}
