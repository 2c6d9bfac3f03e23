package repository

import (
	"context"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// Quote interface defines the contract for quote-related database operations
type Quote interface {
	// Create adds a new quote to the database
	Create(ctx context.Context, quote *model.Quote) error
	// ListByRFQ retrieves all quotes for an rfq with their suppliers
	// preloaded, most recent first
	ListByRFQ(ctx context.Context, rfqID string) ([]*model.Quote, error)
}
