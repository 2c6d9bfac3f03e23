package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/database"
	"github.com/eggmansigma/zuckmyeggs/pkg/extract"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/repository/gormdb"
)

// testRepos bundles sqlite-backed repositories for usecase tests
type testRepos struct {
	rfq      repository.RFQ
	supplier repository.Supplier
	quote    repository.Quote
	deck     repository.Deck
}

func newTestRepos(t *testing.T) testRepos {
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

	db := client.GetDB()
	log := logger.NoOpLogger()
	return testRepos{
		rfq:      gormdb.NewRFQRepository(db, log),
		supplier: gormdb.NewSupplierRepository(db, log),
		quote:    gormdb.NewQuoteRepository(db, log),
		deck:     gormdb.NewDeckRepository(db, log),
	}
}

// createTestRFQ runs an rfq through the real create path so extraction,
// share token and item keys are all in place
func createTestRFQ(t *testing.T, repos testRepos, intake string) *model.RFQ {
	t.Helper()
	uc := NewRFQUseCase(repos.rfq, extract.NewKeyword(), logger.NoOpLogger())
	rfq := &model.RFQ{
		ClientName: "Cafe Bruno",
		Notes:      intake,
		Items: []model.LineItem{
			{Kind: "wholesale", Size: "L", Pack: "tray", QtyWeek: 120, TargetPrice: "£2.40"},
		},
	}
	require.NoError(t, uc.CreateRFQ(context.Background(), rfq), "failed to create test rfq")
	return rfq
}

func createTestSupplier(t *testing.T, repos testRepos, supplier *model.Supplier) *model.Supplier {
	t.Helper()
	uc := NewSupplierUseCase(repos.supplier, logger.NoOpLogger())
	require.NoError(t, uc.CreateSupplier(context.Background(), supplier), "failed to create test supplier")
	return supplier
}

func orchardSupplier() *model.Supplier {
	moq := 40
	low, high := 2.1, 2.8
	return &model.Supplier{
		Name:          "Orchard Eggs",
		Welfare:       "free-range",
		Certs:         "Lion",
		Sizes:         "L,XL",
		PackFormats:   "tray,box",
		MOQTrays:      &moq,
		DeliveryDays:  "Tue,Fri",
		DeliveryAreas: "BN,BN1,RH",
		Email:         "demo+orchard@example.com",
		Phone:         "+447700900111",
		StoryPDFURL:   "https://example.com/orchard.pdf",
		PriceBandLow:  &low,
		PriceBandHigh: &high,
	}
}
