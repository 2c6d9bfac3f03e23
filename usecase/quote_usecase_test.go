package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

func TestAddQuote(t *testing.T) {
	repos := newTestRepos(t)
	uc := NewQuoteUseCase(repos.quote, repos.rfq, repos.supplier, logger.NoOpLogger())
	rfq := createTestRFQ(t, repos, "free-range BN1 tue fri £2.40")
	supplier := createTestSupplier(t, repos, orchardSupplier())

	t.Run("accepts a valid quote", func(t *testing.T) {
		quote := &model.Quote{
			RFQID:        rfq.ID,
			SupplierID:   supplier.ID,
			LineItemKey:  rfq.Items[0].ID,
			UnitPrice:    2.2,
			DeliveryCost: -3,
		}
		err := uc.AddQuote(context.Background(), quote)
		require.NoError(t, err, "AddQuote should succeed")
		assert.Len(t, quote.ID, 26, "quote should get a ulid key")
		assert.Zero(t, quote.DeliveryCost, "negative delivery cost should clamp to zero")
	})

	t.Run("rejects a non-positive unit price", func(t *testing.T) {
		quote := &model.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, LineItemKey: rfq.Items[0].ID}
		err := uc.AddQuote(context.Background(), quote)
		assert.ErrorIs(t, err, domain.ErrUnitPriceInvalid, "zero unit price should be rejected")
	})

	t.Run("rejects an unknown rfq", func(t *testing.T) {
		quote := &model.Quote{
			RFQID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			SupplierID:  supplier.ID,
			LineItemKey: rfq.Items[0].ID,
			UnitPrice:   2.2,
		}
		err := uc.AddQuote(context.Background(), quote)
		assert.ErrorIs(t, err, domain.ErrRFQNotFound, "unknown rfq should be rejected")
	})

	t.Run("rejects an unknown supplier", func(t *testing.T) {
		quote := &model.Quote{
			RFQID:       rfq.ID,
			SupplierID:  "01ARZ3NDEKTSV4RRFFQ69G5FAV",
			LineItemKey: rfq.Items[0].ID,
			UnitPrice:   2.2,
		}
		err := uc.AddQuote(context.Background(), quote)
		assert.ErrorIs(t, err, domain.ErrSupplierNotFound, "unknown supplier should be rejected")
	})

	t.Run("rejects a line item of another rfq", func(t *testing.T) {
		other := createTestRFQ(t, repos, "organic RH mon £2.10")
		quote := &model.Quote{
			RFQID:       rfq.ID,
			SupplierID:  supplier.ID,
			LineItemKey: other.Items[0].ID,
			UnitPrice:   2.2,
		}
		err := uc.AddQuote(context.Background(), quote)
		assert.ErrorIs(t, err, domain.ErrLineItemNotFound, "a foreign line item key should be rejected")
	})
}

func TestListQuotesByRFQ_Usecase(t *testing.T) {
	repos := newTestRepos(t)
	uc := NewQuoteUseCase(repos.quote, repos.rfq, repos.supplier, logger.NoOpLogger())
	rfq := createTestRFQ(t, repos, "free-range BN1 tue fri £2.40")
	supplier := createTestSupplier(t, repos, orchardSupplier())

	first := &model.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, LineItemKey: rfq.Items[0].ID, UnitPrice: 2.4}
	require.NoError(t, uc.AddQuote(context.Background(), first), "AddQuote should succeed")
	second := &model.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, LineItemKey: rfq.Items[0].ID, UnitPrice: 2.2}
	require.NoError(t, uc.AddQuote(context.Background(), second), "AddQuote should succeed")

	quotes, err := uc.ListQuotesByRFQ(context.Background(), rfq.ID)
	require.NoError(t, err, "ListQuotesByRFQ should succeed")
	require.Len(t, quotes, 2, "both quotes should be listed")
	assert.Equal(t, second.ID, quotes[0].ID, "newest quote should come first")
	assert.Equal(t, "Orchard Eggs", quotes[0].Supplier.Name, "supplier should be loaded with the quote")

	t.Run("unknown rfq", func(t *testing.T) {
		_, err := uc.ListQuotesByRFQ(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		assert.ErrorIs(t, err, domain.ErrRFQNotFound, "unknown rfq should be rejected")
	})
}
