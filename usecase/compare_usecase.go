package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/costing"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// CompareUseCase defines the interface for the landed-cost comparison
type CompareUseCase interface {
	// ComparisonRows loads an rfq's quotes and normalises them to landed
	// costs, cheapest first
	ComparisonRows(ctx context.Context, rfqID string) ([]costing.Row, error)
	// SharedComparison resolves a share token and returns the rfq together
	// with its comparison rows for the client-facing view
	SharedComparison(ctx context.Context, rfqID, token string) (*model.RFQ, []costing.Row, error)
}

// compareUseCase implements the CompareUseCase interface
type compareUseCase struct {
	// rfqRepo is the repository interface for rfq database operations
	rfqRepo repository.RFQ
	// quoteRepo provides the captured quotes to normalise
	quoteRepo repository.Quote
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewCompareUseCase creates a new instance of compareUseCase
func NewCompareUseCase(rfqRepo repository.RFQ, quoteRepo repository.Quote, appLogger logger.LoggerInterface) CompareUseCase {
	return &compareUseCase{
		rfqRepo:   rfqRepo,
		quoteRepo: quoteRepo,
		logger:    appLogger,
	}
}

// ComparisonRows loads an rfq's quotes and normalises them to landed costs
func (uc *compareUseCase) ComparisonRows(ctx context.Context, rfqID string) ([]costing.Row, error) {
	uc.logger.InfoContext(ctx, "Building comparison in usecase", "rfqID", rfqID)

	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "RFQ not found for comparison", "rfqID", rfqID)
			return nil, domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting rfq for comparison", "rfqID", rfqID, "error", err)
		return nil, fmt.Errorf("error getting rfq: %w", err)
	}

	rows, err := uc.rowsFor(ctx, rfq)
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Comparison built in usecase", "rfqID", rfqID, "rows", len(rows))
	return rows, nil
}

// SharedComparison resolves a share token and returns the rfq with its rows
func (uc *compareUseCase) SharedComparison(ctx context.Context, rfqID, token string) (*model.RFQ, []costing.Row, error) {
	uc.logger.InfoContext(ctx, "Building shared comparison in usecase", "rfqID", rfqID)

	rfq, err := uc.rfqRepo.GetByShareToken(ctx, rfqID, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Shared rfq not found or token mismatch", "rfqID", rfqID)
			return nil, nil, domain.ErrRFQNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting shared rfq", "rfqID", rfqID, "error", err)
		return nil, nil, fmt.Errorf("error getting shared rfq: %w", err)
	}

	rows, err := uc.rowsFor(ctx, rfq)
	if err != nil {
		return nil, nil, err
	}

	uc.logger.InfoContext(ctx, "Shared comparison built in usecase", "rfqID", rfqID, "rows", len(rows))
	return rfq, rows, nil
}

// rowsFor runs the loaded rfq's quotes through the cost normaliser
func (uc *compareUseCase) rowsFor(ctx context.Context, rfq *model.RFQ) ([]costing.Row, error) {
	quotes, err := uc.quoteRepo.ListByRFQ(ctx, rfq.ID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing quotes for comparison", "rfqID", rfq.ID, "error", err)
		return nil, fmt.Errorf("error listing quotes: %w", err)
	}

	captured := make([]model.Quote, len(quotes))
	for i, q := range quotes {
		captured[i] = *q
	}

	return costing.Rows(rfq.Items, captured), nil
}
