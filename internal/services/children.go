package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/events"
	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/models"
)

// ChildInput is the editable part of a child record.
type ChildInput struct {
	Name         string `json:"name" validate:"required,notblank,max=80"`
	Gender       string `json:"gender" validate:"omitempty,oneof=boy girl"`
	Year         string `json:"year" validate:"required,year_code"`
	Campus       string `json:"campus" validate:"omitempty,campus"`
	HasEal       bool   `json:"hasEal"`
	ShowBoosters bool   `json:"showBoosters"`
	ShowVapp     bool   `json:"showVapp"`
	ShowAen      bool   `json:"showAen"`
}

func (in ChildInput) apply(c *models.Child) {
	c.Name = strings.TrimSpace(in.Name)
	c.Gender = in.Gender
	c.Year = in.Year
	c.Campus = string(catalog.ParseCampus(in.Campus))
	c.HasEal = in.HasEal
	c.ShowBoosters = in.ShowBoosters
	c.ShowVapp = in.ShowVapp
	c.ShowAen = in.ShowAen
}

type Children struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChildren(db *gorm.DB, log *logger.Logger) *Children {
	return &Children{db: db, log: log.With("service", "children")}
}

func (s *Children) Create(ctx context.Context, guardianID uint, in ChildInput) (*models.Child, error) {
	if guardianID == 0 {
		return nil, ErrGuardianRequired
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	c := &models.Child{ID: uuid.NewString(), GuardianID: guardianID}
	in.apply(c)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, errors.Wrap(err, "create child")
	}
	c.Selections = []models.Selection{}
	s.log.Info("child created", "child_id", c.ID, "campus", c.Campus)
	return c, nil
}

// Update replaces the child's profile. Moving to another campus clears the
// selection in the same transaction since activity ids are per campus.
func (s *Children) Update(ctx context.Context, guardianID uint, childID string, in ChildInput) (*models.Child, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	var out *models.Child
	reset := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := getChildTx(tx, guardianID, childID)
		if err != nil {
			return err
		}
		oldCampus := c.CampusKey()
		in.apply(c)
		if c.CampusKey() != oldCampus {
			if err := resetSelectionTx(tx, c.ID); err != nil {
				return err
			}
			c.Selections = []models.Selection{}
			reset = true
		}
		if err := tx.Omit(clause.Associations).Save(c).Error; err != nil {
			return errors.Wrap(err, "update child")
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if reset {
		s.log.Info("campus changed, selection reset", "child_id", out.ID, "campus", out.Campus)
		notify(events.SelectionChange{ChildID: out.ID, Campus: out.Campus, Reset: true})
	}
	return out, nil
}

// Delete removes the child and its selections.
func (s *Children) Delete(ctx context.Context, guardianID uint, childID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := getChildTx(tx, guardianID, childID)
		if err != nil {
			return err
		}
		if err := resetSelectionTx(tx, c.ID); err != nil {
			return err
		}
		if err := tx.Delete(&models.Child{}, "id = ?", c.ID).Error; err != nil {
			return errors.Wrap(err, "delete child")
		}
		s.log.Info("child deleted", "child_id", c.ID)
		return nil
	})
}

func (s *Children) Get(ctx context.Context, guardianID uint, childID string) (*models.Child, error) {
	return getChildTx(s.db.WithContext(ctx), guardianID, childID)
}

// List returns the guardian's children, oldest first, with selections loaded.
func (s *Children) List(ctx context.Context, guardianID uint) ([]models.Child, error) {
	if guardianID == 0 {
		return nil, ErrGuardianRequired
	}
	var out []models.Child
	err := s.db.WithContext(ctx).
		Preload("Selections", orderedSelections).
		Where("guardian_id = ?", guardianID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrap(err, "list children")
	}
	return out, nil
}

// getChildTx loads a child owned by guardianID, selections included.
func getChildTx(tx *gorm.DB, guardianID uint, childID string) (*models.Child, error) {
	if guardianID == 0 {
		return nil, ErrGuardianRequired
	}
	var c models.Child
	err := tx.Preload("Selections", orderedSelections).
		Where("id = ? AND guardian_id = ?", childID, guardianID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, errors.Wrap(err, "get child")
	}
	return &c, nil
}

func orderedSelections(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}
