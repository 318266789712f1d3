package eca

import "github.com/lojf/ecaplanner/internal/catalog"

const (
	FreeSlots = 3
	ExtraFee  = 6750
	EALFee    = 25000
)

// Pricing holds the term pricing knobs.
type Pricing struct {
	FreeSlots int `json:"freeSlots"`
	ExtraFee  int `json:"extraFee"`
	EALFee    int `json:"ealFee"`
}

var DefaultPricing = Pricing{FreeSlots: FreeSlots, ExtraFee: ExtraFee, EALFee: EALFee}

// Cost is the breakdown of a child's term cost.
// TotalCost == FixedCost + ExtraCost + EALCost.
type Cost struct {
	FreeUsed       int `json:"freeUsed"`
	ExtraFreeCount int `json:"extraFreeCount"`
	FixedCost      int `json:"fixedCost"`
	ExtraCost      int `json:"extraCost"`
	EALCost        int `json:"ealCost"`
	TotalCost      int `json:"totalCost"`
}

// ComputeCost prices a selection with DefaultPricing.
func ComputeCost(selected []string, cat *catalog.Catalog) Cost {
	return DefaultPricing.Compute(selected, cat)
}

// Compute walks the selection in order. Visibility is not consulted: a
// resolvable id is priced even if its category is currently hidden for
// the child. Unresolvable ids are skipped.
func (p Pricing) Compute(selected []string, cat *catalog.Catalog) Cost {
	var (
		c      Cost
		hasEAL bool
	)
	for _, id := range selected {
		a, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		switch CategoryOf(a) {
		case CategoryEAL:
			hasEAL = true
		case CategoryAEN:
			// school-assigned, outside the free allowance
			if !a.IsFree {
				c.FixedCost += nonNegative(a.Fee)
			}
		default:
			switch {
			case !a.IsFree:
				c.FixedCost += nonNegative(a.Fee)
			case c.FreeUsed < p.FreeSlots:
				c.FreeUsed++
			default:
				c.ExtraFreeCount++
			}
		}
	}

	if hasEAL {
		c.EALCost = p.EALFee
	}
	c.ExtraCost = c.ExtraFreeCount * p.ExtraFee
	c.TotalCost = c.FixedCost + c.ExtraCost + c.EALCost
	return c
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
