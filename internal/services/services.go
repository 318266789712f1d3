package services

import (
	"gorm.io/gorm"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/eca"
	"github.com/lojf/ecaplanner/internal/logger"
)

// Services bundles everything the handlers need.
type Services struct {
	Guardians  *Guardians
	Children   *Children
	Selections *SelectionStore
	Planner    *Planner
	Catalogs   *catalog.Registry
}

func New(db *gorm.DB, catalogs *catalog.Registry, pricing eca.Pricing, log *logger.Logger) *Services {
	children := NewChildren(db, log)
	return &Services{
		Guardians:  NewGuardians(db, log),
		Children:   children,
		Selections: NewSelectionStore(db, catalogs, pricing, log),
		Planner:    NewPlanner(children, catalogs, pricing),
		Catalogs:   catalogs,
	}
}
