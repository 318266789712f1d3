package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/db"
	"github.com/lojf/ecaplanner/internal/eca"
	"github.com/lojf/ecaplanner/internal/logger"
	"github.com/lojf/ecaplanner/internal/models"
	"github.com/lojf/ecaplanner/internal/services"
)

func intPtr(n int) *int { return &n }

func act(id, name string, fee int, start, end string, days ...string) catalog.Activity {
	return catalog.Activity{
		ID:         id,
		Name:       name,
		Fee:        fee,
		IsFree:     fee == 0,
		YearGroups: catalog.YearGroups{Min: intPtr(1), Max: intPtr(6)},
		Schedule:   catalog.Schedule{Days: days, Time: catalog.TimeRange{Start: start, End: end}},
	}
}

// chaofaCatalog holds the activities most tests pick from.
func chaofaCatalog() *catalog.Catalog {
	return catalog.New(catalog.Meta{Source: "test"}, []catalog.Activity{
		act("ART1", "Art Club", 0, "15:30", "16:20", "Monday"),
		act("PEAL1", "EAL Primary", 0, "15:30", "16:20", "Monday", "Thursday"),
		act("CHESS", "Chess", 0, "15:30", "16:20", "Tuesday"),
		act("LEGO", "Lego Robotics", 0, "16:00", "17:00", "Tuesday"),
		act("SWIM", "Swim Squad", 4500, "15:30", "16:30", "Wednesday"),
		act("FOOT", "Football Girls", 0, "15:30", "16:30", "Friday"),
		act("BOS1", "Maths Booster", 0, "07:30", "08:00", "Monday"),
		act("DRAMA", "Drama", 0, "15:30", "16:20", "Thursday"),
		act("COOK", "Cooking", 0, "15:30", "16:20", "Saturday"),
		act("YOGA", "Yoga", 0, "16:30", "17:20", "Monday"),
	})
}

func cherngtalayCatalog() *catalog.Catalog {
	return catalog.New(catalog.Meta{Source: "test"}, []catalog.Activity{
		act("SURF", "Surf Club", 0, "15:30", "16:30", "Monday"),
	})
}

type fixture struct {
	svc *services.Services
	gdb *gorm.DB
	ctx context.Context
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.db"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	reg := catalog.NewRegistry(map[catalog.Campus]*catalog.Catalog{
		catalog.Chaofa:      chaofaCatalog(),
		catalog.Cherngtalay: cherngtalayCatalog(),
	})
	return &fixture{
		svc: services.New(gdb, reg, eca.DefaultPricing, logger.Nop()),
		gdb: gdb,
		ctx: context.Background(),
	}
}

func (f *fixture) guardian(t *testing.T, phone string) *models.Guardian {
	t.Helper()
	g, err := f.svc.Guardians.Upsert(f.ctx, services.GuardianInput{Phone: phone, Name: "Guardian"})
	require.NoError(t, err)
	return g
}

func (f *fixture) child(t *testing.T, g *models.Guardian, in services.ChildInput) *models.Child {
	t.Helper()
	if in.Name == "" {
		in.Name = "Kid"
	}
	if in.Year == "" {
		in.Year = "3"
	}
	c, err := f.svc.Children.Create(f.ctx, g.ID, in)
	require.NoError(t, err)
	return c
}
