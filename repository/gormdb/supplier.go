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

// supplierRepository implements the Supplier repository interface using gorm
type supplierRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewSupplierRepository creates a new instance of supplierRepository
func NewSupplierRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Supplier {
	return &supplierRepository{
		db:     db,
		logger: logger,
	}
}

// Create adds a new supplier to the database
func (r *supplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	r.logger.InfoContext(ctx, "Creating supplier", "name", supplier.Name)
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create supplier", "name", supplier.Name, "error", err)
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier created successfully", "id", supplier.ID, "name", supplier.Name)
	return nil
}

// GetByID retrieves a supplier by their unique identifier
func (r *supplierRepository) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	r.logger.InfoContext(ctx, "Getting supplier by ID", "id", id)
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			r.logger.WarnContext(ctx, "Supplier not found by ID", "id", id)
			return nil, domain.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get supplier by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier retrieved by ID", "id", supplier.ID, "name", supplier.Name)
	return &supplier, nil
}

// List retrieves all suppliers ordered by name
func (r *supplierRepository) List(ctx context.Context) ([]*model.Supplier, error) {
	r.logger.InfoContext(ctx, "Listing suppliers")
	var suppliers []*model.Supplier
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list suppliers", "error", err)
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	r.logger.InfoContext(ctx, "Suppliers listed", "count", len(suppliers))
	return suppliers, nil
}

// ListByID retrieves all suppliers ordered by id, for exports
func (r *supplierRepository) ListByID(ctx context.Context) ([]*model.Supplier, error) {
	r.logger.InfoContext(ctx, "Listing suppliers by id")
	var suppliers []*model.Supplier
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&suppliers).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list suppliers by id", "error", err)
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	r.logger.InfoContext(ctx, "Suppliers listed by id", "count", len(suppliers))
	return suppliers, nil
}

// Update overwrites an existing supplier's fields
func (r *supplierRepository) Update(ctx context.Context, supplier *model.Supplier) error {
	r.logger.InfoContext(ctx, "Updating supplier", "id", supplier.ID, "name", supplier.Name)
	if err := r.db.WithContext(ctx).Save(supplier).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to update supplier", "id", supplier.ID, "error", err)
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	r.logger.InfoContext(ctx, "Supplier updated successfully", "id", supplier.ID, "name", supplier.Name)
	return nil
}

// Count returns the number of suppliers on the books
func (r *supplierRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Supplier{}).Count(&count).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to count suppliers", "error", err)
		return 0, fmt.Errorf("failed to count suppliers: %w", err)
	}
	return count, nil
}
