package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eggmansigma/zuckmyeggs/contracts"
	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/pkg/api"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/pkg/metrics"
	"github.com/eggmansigma/zuckmyeggs/pkg/validator"
	"github.com/eggmansigma/zuckmyeggs/usecase"
)

// maxImportSize caps the multipart supplier CSV upload at 8 MiB
const maxImportSize = 8 << 20

// SupplierHandler handles HTTP requests for supplier operations
type SupplierHandler struct {
	// SupplierUseCase contains business logic for supplier operations
	SupplierUseCase usecase.SupplierUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Metrics records domain operation counters
	Metrics *metrics.HTTPMetrics
}

// NewSupplierHandler creates a new instance of SupplierHandler
func NewSupplierHandler(supplierUseCase usecase.SupplierUseCase, appLogger logger.LoggerInterface, appMetrics *metrics.HTTPMetrics) *SupplierHandler {
	return &SupplierHandler{
		SupplierUseCase: supplierUseCase,
		Logger:          appLogger,
		API:             api.New(),
		Metrics:         appMetrics,
	}
}

// CreateHandler handles HTTP requests to create a new supplier
func (h *SupplierHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create supplier handler called")

	var req contracts.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for supplier creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for supplier creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	supplier := contracts.CreateSupplierRequestToModel(&req)
	if err := h.SupplierUseCase.CreateSupplier(ctx, supplier); err != nil {
		h.handleSupplierError(ctx, w, err)
		return
	}

	h.Metrics.RecordOperation("supplier", "create")
	h.Logger.InfoContext(ctx, "Supplier created successfully in handler", "id", supplier.ID)
	h.API.Created(ctx, w, contracts.SupplierModelToResponse(supplier))
}

// ListHandler handles HTTP requests to list all suppliers
func (h *SupplierHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List suppliers handler called")

	suppliers, err := h.SupplierUseCase.ListSuppliers(ctx)
	if err != nil {
		h.handleSupplierError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Suppliers listed successfully", "count", len(suppliers))
	h.API.Success(ctx, w, &contracts.SuppliersListResponse{Suppliers: contracts.SupplierModelsToResponses(suppliers)})
}

// GetByIDHandler handles HTTP requests to retrieve a supplier by ID
func (h *SupplierHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get supplier by ID handler called")

	req := contracts.GetSupplierByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get supplier by ID", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	supplier, err := h.SupplierUseCase.GetSupplierByID(ctx, req.ID)
	if err != nil {
		h.handleSupplierError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Supplier retrieved by ID", "id", supplier.ID)
	h.API.Success(ctx, w, contracts.SupplierModelToResponse(supplier))
}

// UpdateHandler handles HTTP requests to update an existing supplier
func (h *SupplierHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Update supplier handler called")

	var req contracts.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for supplier update", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	// Set ID from URL parameter
	req.ID = chi.URLParam(r, "id")

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for supplier update", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	supplier := contracts.UpdateSupplierRequestToModel(&req)
	if err := h.SupplierUseCase.UpdateSupplier(ctx, supplier); err != nil {
		h.handleSupplierError(ctx, w, err)
		return
	}

	h.Metrics.RecordOperation("supplier", "update")
	h.Logger.InfoContext(ctx, "Supplier updated successfully", "id", req.ID)
	h.API.Success(ctx, w, contracts.SupplierModelToResponse(supplier))
}

// ExportCSVHandler handles HTTP requests to download the supplier book as CSV
func (h *SupplierHandler) ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Export suppliers CSV handler called")

	data, err := h.SupplierUseCase.ExportCSV(ctx)
	if err != nil {
		h.handleSupplierError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Suppliers exported in handler", "bytes", len(data))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="suppliers.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.ErrorContext(ctx, "Failed to write supplier csv response", "error", err)
	}
}

// ImportCSVHandler handles HTTP requests to upsert suppliers from an uploaded CSV
func (h *SupplierHandler) ImportCSVHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Import suppliers CSV handler called")

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.Logger.WarnContext(ctx, "Invalid multipart form for supplier import", "error", err)
		h.API.BadRequest(ctx, w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.Logger.WarnContext(ctx, "Missing file field for supplier import", "error", err)
		h.API.BadRequest(ctx, w, "A csv file is required in the file field")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.SupplierUseCase.ImportCSV(ctx, file)
	if err != nil {
		h.Logger.WarnContext(ctx, "Supplier import failed", "error", err)
		h.API.BadRequest(ctx, w, err.Error())
		return
	}

	h.Metrics.RecordOperation("supplier", "import")
	h.Logger.InfoContext(ctx, "Suppliers imported successfully", "created", result.Created, "updated", result.Updated, "skipped", result.Skipped)
	h.API.Success(ctx, w, &contracts.ImportSuppliersResponse{
		Created: result.Created,
		Updated: result.Updated,
		Skipped: result.Skipped,
	})
}

// handleSupplierError handles supplier-related errors consistently
func (h *SupplierHandler) handleSupplierError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSupplierNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrSupplierNameRequired):
		h.API.BadRequest(ctx, w, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}
