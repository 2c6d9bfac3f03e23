package repository

import (
	"context"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// Supplier interface defines the contract for supplier-related database operations
type Supplier interface {
	// Create adds a new supplier to the database
	Create(ctx context.Context, supplier *model.Supplier) error
	// GetByID retrieves a supplier by their unique identifier
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	// List retrieves all suppliers ordered by name
	List(ctx context.Context) ([]*model.Supplier, error)
	// ListByID retrieves all suppliers ordered by id, for exports
	ListByID(ctx context.Context) ([]*model.Supplier, error)
	// Update modifies an existing supplier
	Update(ctx context.Context, supplier *model.Supplier) error
	// Count returns the number of suppliers on the books
	Count(ctx context.Context) (int64, error)
}
