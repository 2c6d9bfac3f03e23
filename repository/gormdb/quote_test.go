package gormdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

func TestQuoteRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	rfq := seedRFQ(t, db)
	supplier := seedSupplier(t, db, "Orchard Eggs")
	repo := NewQuoteRepository(db, logger.NoOpLogger())

	quote := &model.Quote{
		RFQID:        rfq.ID,
		SupplierID:   supplier.ID,
		LineItemKey:  rfq.Items[0].ID,
		UnitPrice:    2.1,
		DeliveryCost: 12.5,
	}
	require.NoError(t, repo.Create(context.Background(), quote))
	assert.Len(t, quote.ID, 26, "quote should get a ulid primary key")

	quotes, err := repo.ListByRFQ(context.Background(), rfq.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Orchard Eggs", quotes[0].Supplier.Name, "supplier should be preloaded")
	assert.Equal(t, 2.1, quotes[0].UnitPrice)
}

func TestQuoteRepository_ListByRFQ_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	rfq := seedRFQ(t, db)
	supplier := seedSupplier(t, db, "Orchard Eggs")
	repo := NewQuoteRepository(db, logger.NoOpLogger())

	older := &model.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, LineItemKey: rfq.Items[0].ID, UnitPrice: 2.1}
	newer := &model.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, LineItemKey: rfq.Items[0].ID, UnitPrice: 2.3}
	require.NoError(t, repo.Create(context.Background(), older))
	require.NoError(t, repo.Create(context.Background(), newer))

	quotes, err := repo.ListByRFQ(context.Background(), rfq.ID)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, newer.ID, quotes[0].ID, "most recent quote should come first")
	assert.Equal(t, older.ID, quotes[1].ID)
}

func TestQuoteRepository_ListByRFQ_ScopedToRFQ(t *testing.T) {
	db := newTestDB(t)
	rfqA := seedRFQ(t, db)
	rfqB := seedRFQ(t, db)
	supplier := seedSupplier(t, db, "Orchard Eggs")
	repo := NewQuoteRepository(db, logger.NoOpLogger())

	require.NoError(t, repo.Create(context.Background(), &model.Quote{
		RFQID: rfqA.ID, SupplierID: supplier.ID, LineItemKey: rfqA.Items[0].ID, UnitPrice: 2.1,
	}))

	quotes, err := repo.ListByRFQ(context.Background(), rfqB.ID)
	require.NoError(t, err)
	assert.Empty(t, quotes, "quotes must not leak across rfqs")
}
