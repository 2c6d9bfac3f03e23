package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// quoteRepository implements the Quote repository interface using gorm
type quoteRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewQuoteRepository creates a new instance of quoteRepository
func NewQuoteRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Quote {
	return &quoteRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new quote to the database
func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	r.logger.InfoContext(ctx, "Creating quote", "rfqID", quote.RFQID, "supplierID", quote.SupplierID)
	if err := r.db.WithContext(ctx).Omit("Supplier").Create(quote).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create quote", "rfqID", quote.RFQID, "supplierID", quote.SupplierID, "error", err)
		return fmt.Errorf("failed to create quote: %w", err)
	}
	r.logger.InfoContext(ctx, "Quote created successfully", "id", quote.ID, "rfqID", quote.RFQID)
	return nil
}

// ListByRFQ retrieves all quotes for an rfq with their suppliers preloaded,
// most recent first
func (r *quoteRepository) ListByRFQ(ctx context.Context, rfqID string) ([]*model.Quote, error) {
	r.logger.InfoContext(ctx, "Listing quotes by rfq", "rfqID", rfqID)
	var quotes []*model.Quote
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("rfq_id = ?", rfqID).
		Order("created_at DESC, id DESC").
		Find(&quotes).Error
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list quotes by rfq", "rfqID", rfqID, "error", err)
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	r.logger.InfoContext(ctx, "Quotes listed by rfq", "rfqID", rfqID, "count", len(quotes))
	return quotes, nil
}
