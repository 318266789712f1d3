package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/models"
)

type GuardianInput struct {
	Phone string `json:"phone" validate:"required,notblank"`
	Name  string `json:"name" validate:"max=80"`
}

type Guardians struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGuardians(db *gorm.DB, log *logger.Logger) *Guardians {
	return &Guardians{db: db, log: log.With("service", "guardians")}
}

// Upsert finds the guardian by any spelling of the phone number or creates
// one. A non-empty name replaces the stored one.
func (s *Guardians) Upsert(ctx context.Context, in GuardianInput) (*models.Guardian, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	phone := NormPhone(in.Phone)
	if phone == "" {
		return nil, NewValidationError(errors.New("invalid input"),
			FieldError{Field: "phone", Error: "phone must be a valid phone number"})
	}
	name := strings.TrimSpace(in.Name)

	var out *models.Guardian
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		g, err := findGuardianByAny(tx, in.Phone)
		switch {
		case err == nil:
			changed := false
			if name != "" && g.Name != name {
				g.Name = name
				changed = true
			}
			if g.Phone != phone {
				g.Phone = phone
				changed = true
			}
			if changed {
				if err := tx.Save(g).Error; err != nil {
					return errors.Wrap(err, "update guardian")
				}
			}
			out = g
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			g := &models.Guardian{Phone: phone, Name: name}
			if err := tx.Create(g).Error; err != nil {
				return errors.Wrap(err, "create guardian")
			}
			s.log.Info("guardian created", "guardian_id", g.ID, "phone", phone)
			out = g
			return nil
		default:
			return errors.Wrap(err, "find guardian")
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Guardians) Get(ctx context.Context, id uint) (*models.Guardian, error) {
	if id == 0 {
		return nil, ErrGuardianRequired
	}
	var g models.Guardian
	if err := s.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuardianRequired
		}
		return nil, errors.Wrap(err, "get guardian")
	}
	return &g, nil
}

// ByPhone resolves a session phone to its guardian.
func (s *Guardians) ByPhone(ctx context.Context, phone string) (*models.Guardian, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, ErrGuardianRequired
	}
	g, err := findGuardianByAny(s.db.WithContext(ctx), phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuardianRequired
		}
		return nil, errors.Wrap(err, "find guardian")
	}
	return g, nil
}
