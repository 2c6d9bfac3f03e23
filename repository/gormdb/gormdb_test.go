package gormdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/pkg/database"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// newTestDB opens an isolated in-memory sqlite database for one test and
// migrates the full schema. cache=shared keeps every pooled connection on
// the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	client, err := database.NewClient(database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = client.Close() })

	err = client.Migrate(
		&model.RFQ{},
		&model.LineItem{},
		&model.Supplier{},
		&model.Quote{},
		&model.Fact{},
		&model.DeckProfile{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	return client.GetDB()
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *model.Supplier {
	t.Helper()
	supplier := &model.Supplier{
		Name:          name,
		Welfare:       "free-range",
		Sizes:         "L,XL",
		PackFormats:   "tray,box",
		DeliveryAreas: "BN,RH",
	}
	repo := NewSupplierRepository(db, logger.NoOpLogger())
	require.NoError(t, repo.Create(context.Background(), supplier), "failed to seed supplier")
	return supplier
}

func seedRFQ(t *testing.T, db *gorm.DB) *model.RFQ {
	t.Helper()
	rfq := &model.RFQ{
		ClientName: "Cafe Bruno",
		Areas:      "BN1",
		ShareToken: "tok-123",
		Items: []model.LineItem{
			{Position: 0, Kind: "wholesale", Size: "L", Pack: "tray", QtyWeek: 120, TargetPrice: "£2.40"},
			{Position: 1, Kind: "retail", Size: "M", Pack: "box", QtyWeek: 10},
		},
	}
	repo := NewRFQRepository(db, logger.NoOpLogger())
	require.NoError(t, repo.Create(context.Background(), rfq), "failed to seed rfq")
	return rfq
}
