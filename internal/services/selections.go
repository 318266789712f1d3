package services

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
	"github.com/lojf/ecaplanner/internal/events"
	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/models"
)

// ToggleResult is the state after a toggle.
type ToggleResult struct {
	ChildID    string   `json:"childId"`
	ActivityID string   `json:"activityId"`
	Selected   bool     `json:"selected"`
	Selection  []string `json:"selection"`
	Cost       eca.Cost `json:"cost"`
}

// SelectionStore persists selections. Every change runs in one transaction
// so concurrent toggles for the same child apply one after another.
type SelectionStore struct {
	db       *gorm.DB
	catalogs *catalog.Registry
	pricing  eca.Pricing
	log      *logger.Logger
}

func NewSelectionStore(db *gorm.DB, catalogs *catalog.Registry, pricing eca.Pricing, log *logger.Logger) *SelectionStore {
	return &SelectionStore{db: db, catalogs: catalogs, pricing: pricing, log: log.With("service", "selections")}
}

// Toggle flips activityID in the child's selection. Removing always
// succeeds, stale ids included. Adding requires the activity to exist in
// the child's campus catalog and to be visible and selectable for the child.
func (s *SelectionStore) Toggle(ctx context.Context, guardianID uint, childID, activityID string) (*ToggleResult, error) {
	var res *ToggleResult
	var campus string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, c, err := s.ToggleTx(tx, guardianID, childID, activityID)
		if err != nil {
			return err
		}
		res, campus = r, c
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("selection toggled", "child_id", childID, "activity_id", activityID, "selected", res.Selected)
	notify(events.SelectionChange{ChildID: childID, Campus: campus, ActivityID: activityID, Added: res.Selected})
	return res, nil
}

// ToggleTx does the same as Toggle but inside an existing TX. It also
// returns the child's campus.
func (s *SelectionStore) ToggleTx(tx *gorm.DB, guardianID uint, childID, activityID string) (*ToggleResult, string, error) {
	child, err := getChildTx(tx, guardianID, childID)
	if err != nil {
		return nil, "", err
	}
	cat := s.catalogs.For(child.CampusKey())
	current := child.SelectedIDs()
	next := eca.Toggle(current, activityID)
	adding := len(next) > len(current)

	if adding {
		a, ok := cat.Lookup(activityID)
		if !ok {
			return nil, "", errors.Wrapf(ErrActivityNotFound, "activity %s", activityID)
		}
		ann := eca.Annotate(a, child.Profile(), current, cat)
		switch {
		case !ann.Visible:
			return nil, "", &NotSelectableError{ActivityID: activityID, Reason: "notVisible"}
		case !ann.Selectable:
			return nil, "", &NotSelectableError{ActivityID: activityID, Reason: string(ann.BlockReason)}
		}
		sel := models.Selection{ChildID: child.ID, ActivityID: activityID, Position: nextPosition(child.Selections)}
		if err := tx.Create(&sel).Error; err != nil {
			return nil, "", errors.Wrap(err, "add selection")
		}
	} else {
		if err := tx.Where("child_id = ? AND activity_id = ?", child.ID, activityID).
			Delete(&models.Selection{}).Error; err != nil {
			return nil, "", errors.Wrap(err, "remove selection")
		}
	}

	return &ToggleResult{
		ChildID:    child.ID,
		ActivityID: activityID,
		Selected:   adding,
		Selection:  next,
		Cost:       s.pricing.Compute(next, cat),
	}, child.Campus, nil
}

// Reset clears the child's selection.
func (s *SelectionStore) Reset(ctx context.Context, guardianID uint, childID string) error {
	var campus string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		child, err := getChildTx(tx, guardianID, childID)
		if err != nil {
			return err
		}
		campus = child.Campus
		return resetSelectionTx(tx, child.ID)
	})
	if err != nil {
		return err
	}
	s.log.Info("selection reset", "child_id", childID)
	notify(events.SelectionChange{ChildID: childID, Campus: campus, Reset: true})
	return nil
}

// Selected returns the child's selected ids in pick order.
func (s *SelectionStore) Selected(ctx context.Context, guardianID uint, childID string) ([]string, error) {
	child, err := getChildTx(s.db.WithContext(ctx), guardianID, childID)
	if err != nil {
		return nil, err
	}
	return child.SelectedIDs(), nil
}

func resetSelectionTx(tx *gorm.DB, childID string) error {
	if err := tx.Where("child_id = ?", childID).Delete(&models.Selection{}).Error; err != nil {
		return errors.Wrap(err, "reset selection")
	}
	return nil
}

func nextPosition(sels []models.Selection) int {
	top := 0
	for _, s := range sels {
		if s.Position > top {
			top = s.Position
		}
	}
	return top + 1
}

func notify(change events.SelectionChange) {
	if events.OnSelectionChanged != nil {
		events.OnSelectionChanged(change)
	}
}
