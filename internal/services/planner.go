package services

import (
	"context"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
	"github.com/lojf/ecaplanner/internal/models"
)

// Planner answers the read-side questions for a guardian's children.
type Planner struct {
	children *Children
	catalogs *catalog.Registry
	pricing  eca.Pricing
}

func NewPlanner(children *Children, catalogs *catalog.Registry, pricing eca.Pricing) *Planner {
	return &Planner{children: children, catalogs: catalogs, pricing: pricing}
}

func (p *Planner) Pricing() eca.Pricing { return p.pricing }

// Catalog returns the catalog for a child's campus.
func (p *Planner) Catalog(c *models.Child) *catalog.Catalog {
	return p.catalogs.For(c.CampusKey())
}

func (p *Planner) Board(ctx context.Context, guardianID uint, childID string, slot eca.Slot) ([]eca.BoardDay, error) {
	c, err := p.children.Get(ctx, guardianID, childID)
	if err != nil {
		return nil, err
	}
	return eca.Board(c.Profile(), c.SelectedIDs(), p.Catalog(c), slot), nil
}

func (p *Planner) Cost(ctx context.Context, guardianID uint, childID string) (eca.Cost, error) {
	c, err := p.children.Get(ctx, guardianID, childID)
	if err != nil {
		return eca.Cost{}, err
	}
	return p.pricing.Compute(c.SelectedIDs(), p.Catalog(c)), nil
}

func (p *Planner) Summary(ctx context.Context, guardianID uint, childID string) (eca.ChildSummary, error) {
	c, err := p.children.Get(ctx, guardianID, childID)
	if err != nil {
		return eca.ChildSummary{}, err
	}
	return p.pricing.Summarize(p.selectionSet(c)), nil
}

// Family aggregates every child of the guardian.
func (p *Planner) Family(ctx context.Context, guardianID uint) (eca.FamilySummary, error) {
	kids, err := p.children.List(ctx, guardianID)
	if err != nil {
		return eca.FamilySummary{}, err
	}
	sets := make([]eca.SelectionSet, 0, len(kids))
	for i := range kids {
		sets = append(sets, p.selectionSet(&kids[i]))
	}
	return p.pricing.Aggregate(sets), nil
}

func (p *Planner) selectionSet(c *models.Child) eca.SelectionSet {
	return eca.SelectionSet{
		ChildID:  c.ID,
		Name:     c.Name,
		Selected: c.SelectedIDs(),
		Catalog:  p.Catalog(c),
	}
}
