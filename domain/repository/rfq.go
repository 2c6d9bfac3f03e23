// Package repository defines the interfaces for the data access layer
package repository

import (
	"context"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// RFQ interface defines the contract for rfq-related database operations
type RFQ interface {
	// Create adds a new rfq with its line items to the database
	Create(ctx context.Context, rfq *model.RFQ) error
	// GetByID retrieves an rfq with its line items by its unique identifier
	GetByID(ctx context.Context, id string) (*model.RFQ, error)
	// GetByShareToken retrieves an rfq only when the share token matches
	GetByShareToken(ctx context.Context, id, token string) (*model.RFQ, error)
}
