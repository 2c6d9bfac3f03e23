package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// QuoteUseCase defines the interface for quote-related business operations
type QuoteUseCase interface {
	// AddQuote records a supplier's offer against one rfq line item
	AddQuote(ctx context.Context, quote *model.Quote) error
	// ListQuotesByRFQ retrieves all quotes for an rfq, most recent first
	ListQuotesByRFQ(ctx context.Context, rfqID string) ([]*model.Quote, error)
}

// quoteUseCase implements the QuoteUseCase interface
type quoteUseCase struct {
	// quoteRepo is the repository interface for quote database operations
	quoteRepo repository.Quote
	// rfqRepo is used to resolve the rfq and its line item keys
	rfqRepo repository.RFQ
	// supplierRepo is used to validate supplier existence
	supplierRepo repository.Supplier
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewQuoteUseCase creates a new instance of quoteUseCase
func NewQuoteUseCase(quoteRepo repository.Quote, rfqRepo repository.RFQ, supplierRepo repository.Supplier, appLogger logger.LoggerInterface) QuoteUseCase {
	return &quoteUseCase{
		quoteRepo:    quoteRepo,
		rfqRepo:      rfqRepo,
		supplierRepo: supplierRepo,
		logger:       appLogger,
	}
}

// AddQuote records a supplier's offer against one rfq line item
func (uc *quoteUseCase) AddQuote(ctx context.Context, quote *model.Quote) error {
	uc.logger.InfoContext(ctx, "Adding quote in usecase", "rfqID", quote.RFQID, "supplierID", quote.SupplierID)

	if quote.UnitPrice <= 0 {
		uc.logger.WarnContext(ctx, "Rejected quote with non-positive unit price", "unitPrice", quote.UnitPrice)
		return domain.ErrUnitPriceInvalid
	}
	if quote.DeliveryCost < 0 {
		quote.DeliveryCost = 0
	}

	rfq, err := uc.rfqRepo.GetByID(ctx, quote.RFQID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "RFQ not found for quote", "rfqID", quote.RFQID)
			return domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error checking rfq for quote", "rfqID", quote.RFQID, "error", err)
		return fmt.Errorf("error checking rfq: %w", err)
	}

	if _, err := uc.supplierRepo.GetByID(ctx, quote.SupplierID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Supplier not found for quote", "supplierID", quote.SupplierID)
			return domain.ErrSupplierNotFound
		}
		uc.logger.ErrorContext(ctx, "Error checking supplier for quote", "supplierID", quote.SupplierID, "error", err)
		return fmt.Errorf("error checking supplier: %w", err)
	}

	// the quote must point at a line item of this rfq
	known := false
	for _, item := range rfq.Items {
		if item.ID == quote.LineItemKey {
			known = true
			break
		}
	}
	if !known {
		uc.logger.WarnContext(ctx, "Quote references an unknown line item", "rfqID", quote.RFQID, "lineItemKey", quote.LineItemKey)
		return domain.ErrLineItemNotFound
	}

	if err := uc.quoteRepo.Create(ctx, quote); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create quote in repository", "rfqID", quote.RFQID, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Quote added successfully in usecase", "id", quote.ID, "rfqID", quote.RFQID)
	return nil
}

// ListQuotesByRFQ retrieves all quotes for an rfq, most recent first
func (uc *quoteUseCase) ListQuotesByRFQ(ctx context.Context, rfqID string) ([]*model.Quote, error) {
	uc.logger.InfoContext(ctx, "Listing quotes in usecase", "rfqID", rfqID)

	if _, err := uc.rfqRepo.GetByID(ctx, rfqID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "RFQ not found for quote listing", "rfqID", rfqID)
			return nil, domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error checking rfq for quote listing", "rfqID", rfqID, "error", err)
		return nil, fmt.Errorf("error checking rfq: %w", err)
	}

	quotes, err := uc.quoteRepo.ListByRFQ(ctx, rfqID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing quotes", "rfqID", rfqID, "error", err)
		return nil, fmt.Errorf("error listing quotes: %w", err)
	}

	uc.logger.InfoContext(ctx, "Quotes listed in usecase", "rfqID", rfqID, "count", len(quotes))
	return quotes, nil
}
