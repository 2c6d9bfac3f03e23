package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// supplierCSVHeader is the fixed column layout shared by export and import.
// delivery_postcodes carries the delivery-area prefixes.
var supplierCSVHeader = []string{
	"id", "name", "welfare", "certs", "sizes", "pack_formats", "moq_trays",
	"delivery_days", "delivery_postcodes", "email", "phone", "whatsapp",
	"story_pdf_url", "price_band_low", "price_band_high", "notes",
}

// ImportResult summarises a supplier CSV import
type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

// SupplierUseCase defines the interface for supplier-related business operations
type SupplierUseCase interface {
	// CreateSupplier adds a new supplier to the books
	CreateSupplier(ctx context.Context, supplier *model.Supplier) error
	// GetSupplierByID retrieves a supplier by its ID
	GetSupplierByID(ctx context.Context, id string) (*model.Supplier, error)
	// ListSuppliers retrieves all suppliers ordered by name
	ListSuppliers(ctx context.Context) ([]*model.Supplier, error)
	// UpdateSupplier overwrites an existing supplier's fields
	UpdateSupplier(ctx context.Context, supplier *model.Supplier) error
	// SeedDemo inserts the demo farms when the book is empty; it reports
	// whether anything was seeded
	SeedDemo(ctx context.Context) (bool, error)
	// ExportCSV renders all suppliers as CSV in id order
	ExportCSV(ctx context.Context) ([]byte, error)
	// ImportCSV upserts suppliers from a CSV stream; broken rows are
	// skipped and counted, not fatal
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// supplierUseCase implements the SupplierUseCase interface
type supplierUseCase struct {
	// supplierRepo is the repository interface for supplier database operations
	supplierRepo repository.Supplier
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewSupplierUseCase creates a new instance of supplierUseCase
func NewSupplierUseCase(supplierRepo repository.Supplier, appLogger logger.LoggerInterface) SupplierUseCase {
	return &supplierUseCase{
		supplierRepo: supplierRepo,
		logger:       appLogger,
	}
}

// CreateSupplier adds a new supplier to the books
func (uc *supplierUseCase) CreateSupplier(ctx context.Context, supplier *model.Supplier) error {
	uc.logger.InfoContext(ctx, "Creating supplier in usecase", "name", supplier.Name)

	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		uc.logger.WarnContext(ctx, "Supplier name is required for creation")
		return domain.ErrSupplierNameRequired
	}

	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to create supplier in repository", "name", supplier.Name, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Supplier created successfully in usecase", "id", supplier.ID, "name", supplier.Name)
	return nil
}

// GetSupplierByID retrieves a supplier by its ID
func (uc *supplierUseCase) GetSupplierByID(ctx context.Context, id string) (*model.Supplier, error) {
	uc.logger.InfoContext(ctx, "Getting supplier by ID in usecase", "id", id)
	if id == "" {
		uc.logger.WarnContext(ctx, "Invalid supplier ID provided", "id", id)
		return nil, domain.ErrInvalidID
	}

	supplier, err := uc.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Supplier not found", "id", id)
			return nil, domain.ErrSupplierNotFound
		}
		uc.logger.ErrorContext(ctx, "Error getting supplier by ID", "id", id, "error", err)
		return nil, fmt.Errorf("error getting supplier: %w", err)
	}

	uc.logger.InfoContext(ctx, "Supplier retrieved by ID in usecase", "id", supplier.ID, "name", supplier.Name)
	return supplier, nil
}

// ListSuppliers retrieves all suppliers ordered by name
func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]*model.Supplier, error) {
	uc.logger.InfoContext(ctx, "Listing suppliers in usecase")

	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing suppliers", "error", err)
		return nil, fmt.Errorf("error listing suppliers: %w", err)
	}

	uc.logger.InfoContext(ctx, "Suppliers listed in usecase", "count", len(suppliers))
	return suppliers, nil
}

// UpdateSupplier overwrites an existing supplier's fields
func (uc *supplierUseCase) UpdateSupplier(ctx context.Context, supplier *model.Supplier) error {
	uc.logger.InfoContext(ctx, "Updating supplier in usecase", "id", supplier.ID, "name", supplier.Name)

	if supplier.ID == "" {
		uc.logger.WarnContext(ctx, "Supplier ID is required for update")
		return domain.ErrInvalidID
	}
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		uc.logger.WarnContext(ctx, "Supplier name is required for update")
		return domain.ErrSupplierNameRequired
	}

	existing, err := uc.supplierRepo.GetByID(ctx, supplier.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.WarnContext(ctx, "Supplier not found for update", "id", supplier.ID)
			return domain.ErrSupplierNotFound
		}
		uc.logger.ErrorContext(ctx, "Error checking existing supplier", "id", supplier.ID, "error", err)
		return fmt.Errorf("error checking existing supplier: %w", err)
	}

	// Save overwrites every column, so keep the original creation time
	supplier.CreatedAt = existing.CreatedAt

	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to update supplier in repository", "id", supplier.ID, "error", err)
		return err
	}

	uc.logger.InfoContext(ctx, "Supplier updated successfully in usecase", "id", supplier.ID, "name", supplier.Name)
	return nil
}

// SeedDemo inserts the demo farms when the book is empty
func (uc *supplierUseCase) SeedDemo(ctx context.Context) (bool, error) {
	count, err := uc.supplierRepo.Count(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error counting suppliers for seed", "error", err)
		return false, fmt.Errorf("error counting suppliers: %w", err)
	}
	if count > 0 {
		uc.logger.InfoContext(ctx, "Supplier book not empty, skipping demo seed", "count", count)
		return false, nil
	}

	for _, supplier := range demoSuppliers() {
		if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
			uc.logger.ErrorContext(ctx, "Failed to seed demo supplier", "name", supplier.Name, "error", err)
			return false, err
		}
	}

	uc.logger.InfoContext(ctx, "Demo suppliers seeded")
	return true, nil
}

// ExportCSV renders all suppliers as CSV in id order
func (uc *supplierUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	suppliers, err := uc.supplierRepo.ListByID(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing suppliers for export", "error", err)
		return nil, fmt.Errorf("error listing suppliers: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{supplierCSVHeader}
	for _, s := range suppliers {
		records = append(records, []string{
			s.ID,
			s.Name,
			s.Welfare,
			s.Certs,
			s.Sizes,
			s.PackFormats,
			intToField(s.MOQTrays),
			s.DeliveryDays,
			s.DeliveryAreas,
			s.Email,
			s.Phone,
			s.WhatsApp,
			s.StoryPDFURL,
			floatToField(s.PriceBandLow),
			floatToField(s.PriceBandHigh),
			strings.ReplaceAll(s.Notes, "\n", " "),
		})
	}

	if err := w.WriteAll(records); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to write supplier csv", "error", err)
		return nil, fmt.Errorf("failed to write supplier csv: %w", err)
	}

	uc.logger.InfoContext(ctx, "Suppliers exported to csv", "count", len(suppliers), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// ImportCSV upserts suppliers from a CSV stream
func (uc *supplierUseCase) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		uc.logger.ErrorContext(ctx, "Failed to read supplier csv header", "error", err)
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := columns["name"]; !ok {
		uc.logger.WarnContext(ctx, "Supplier csv is missing the name column")
		return nil, fmt.Errorf("csv header is missing the name column")
	}

	result := &ImportResult{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				result.Skipped++
				continue
			}
			uc.logger.ErrorContext(ctx, "Failed to read supplier csv row", "error", err)
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := field("name")
		if name == "" {
			result.Skipped++
			continue
		}
		moq, moqErr := fieldToInt(field("moq_trays"))
		low, lowErr := fieldToFloat(field("price_band_low"))
		high, highErr := fieldToFloat(field("price_band_high"))
		if moqErr != nil || lowErr != nil || highErr != nil {
			result.Skipped++
			continue
		}

		supplier := &model.Supplier{
			ID:            field("id"),
			Name:          name,
			Welfare:       field("welfare"),
			Certs:         field("certs"),
			Sizes:         field("sizes"),
			PackFormats:   field("pack_formats"),
			MOQTrays:      moq,
			DeliveryDays:  field("delivery_days"),
			DeliveryAreas: field("delivery_postcodes"),
			Email:         field("email"),
			Phone:         field("phone"),
			WhatsApp:      field("whatsapp"),
			StoryPDFURL:   field("story_pdf_url"),
			PriceBandLow:  low,
			PriceBandHigh: high,
			Notes:         field("notes"),
		}

		if supplier.ID != "" {
			existing, err := uc.supplierRepo.GetByID(ctx, supplier.ID)
			if err == nil {
				supplier.CreatedAt = existing.CreatedAt
				if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
					uc.logger.ErrorContext(ctx, "Failed to update imported supplier", "id", supplier.ID, "error", err)
					return nil, err
				}
				result.Updated++
				continue
			}
			if !errors.Is(err, domain.ErrNotFound) {
				uc.logger.ErrorContext(ctx, "Error checking imported supplier", "id", supplier.ID, "error", err)
				return nil, fmt.Errorf("error checking imported supplier: %w", err)
			}
		}

		if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
			uc.logger.ErrorContext(ctx, "Failed to create imported supplier", "name", supplier.Name, "error", err)
			return nil, err
		}
		result.Created++
	}

	uc.logger.InfoContext(ctx, "Supplier csv imported", "created", result.Created, "updated", result.Updated, "skipped", result.Skipped)
	return result, nil
}

// demoSuppliers returns the two farms used to make a fresh install useful
func demoSuppliers() []*model.Supplier {
	moqOrchard, moqMarshwood := 40, 30
	orchardLow, orchardHigh := 2.1, 2.8
	marshwoodLow, marshwoodHigh := 2.2, 3.0
	return []*model.Supplier{
		{
			Name:          "Orchard Eggs",
			Welfare:       "free-range",
			Certs:         "Lion",
			Sizes:         "L,XL",
			PackFormats:   "tray,box",
			MOQTrays:      &moqOrchard,
			DeliveryDays:  "Tue,Fri",
			DeliveryAreas: "BN,BN1,RH",
			Email:         "demo+orchard@example.com",
			Phone:         "+447700900111",
			WhatsApp:      "+447700900111",
			StoryPDFURL:   "https://example.com/orchard.pdf",
			PriceBandLow:  &orchardLow,
			PriceBandHigh: &orchardHigh,
			Notes:         "Sussex family farm.",
		},
		{
			Name:          "Marshwood Farm",
			Welfare:       "organic",
			Certs:         "Organic,Lion",
			Sizes:         "M,L",
			PackFormats:   "tray",
			MOQTrays:      &moqMarshwood,
			DeliveryDays:  "Mon,Wed",
			DeliveryAreas: "BN,PO",
			Email:         "demo+marshwood@example.com",
			Phone:         "+447700900222",
			WhatsApp:      "+447700900222",
			StoryPDFURL:   "https://example.com/marshwood.pdf",
			PriceBandLow:  &marshwoodLow,
			PriceBandHigh: &marshwoodHigh,
			Notes:         "Dorset organic.",
		},
	}
}

func intToField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatToField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func fieldToInt(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func fieldToFloat(v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
