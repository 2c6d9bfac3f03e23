// Package gormdb provides the gorm implementation of the record store
// repositories. The same implementations serve postgres and sqlite.
package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// rfqRepository implements the RFQ repository interface using gorm
type rfqRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewRFQRepository creates a new instance of rfqRepository
func NewRFQRepository(db *gorm.DB, logger logger.LoggerInterface) repository.RFQ {
	return &rfqRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new rfq and its line items to the database
func (r *rfqRepository) Create(ctx context.Context, rfq *model.RFQ) error {
	r.logger.InfoContext(ctx, "Creating rfq", "client", rfq.ClientName, "items", len(rfq.Items))
	if err := r.db.WithContext(ctx).Create(rfq).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create rfq", "client", rfq.ClientName, "error", err)
		return fmt.Errorf("failed to create rfq: %w", err)
	}
	r.logger.InfoContext(ctx, "RFQ created successfully", "id", rfq.ID, "items", len(rfq.Items))
	return nil
}

// GetByID retrieves an rfq with its line items in position order
func (r *rfqRepository) GetByID(ctx context.Context, id string) (*model.RFQ, error) {
	r.logger.InfoContext(ctx, "Getting rfq by ID", "id", id)
	var rfq model.RFQ
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", id).
		First(&rfq).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "RFQ not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get rfq by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rfq: %w", err)
	}
	r.logger.InfoContext(ctx, "RFQ retrieved by ID", "id", rfq.ID, "items", len(rfq.Items))
	return &rfq, nil
}

// GetByShareToken retrieves an rfq only when the share token matches
func (r *rfqRepository) GetByShareToken(ctx context.Context, id, token string) (*model.RFQ, error) {
	r.logger.InfoContext(ctx, "Getting rfq by share token", "id", id)
	var rfq model.RFQ
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ? AND share_token = ?", id, token).
		First(&rfq).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "RFQ not found by share token", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get rfq by share token", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rfq: %w", err)
	}
	r.logger.InfoContext(ctx, "RFQ retrieved by share token", "id", rfq.ID)
	return &rfq, nil
}
