// Package http contains HTTP delivery implementations for the application
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

// RFQHandler handles HTTP requests for RFQ operations
type RFQHandler struct {
	// RFQUseCase contains business logic for RFQ operations
	RFQUseCase usecase.RFQUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Metrics records domain operation counters
	Metrics *metrics.HTTPMetrics
}

// NewRFQHandler creates a new instance of RFQHandler
func NewRFQHandler(rfqUseCase usecase.RFQUseCase, appLogger logger.LoggerInterface, appMetrics *metrics.HTTPMetrics) *RFQHandler {
	return &RFQHandler{
		RFQUseCase: rfqUseCase,
		Logger:     appLogger,
		API:        api.New(),
		Metrics:    appMetrics,
	}
}

// CreateHandler handles HTTP requests to create a new RFQ
func (h *RFQHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Create RFQ handler called")

	var req contracts.CreateRFQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for RFQ creation", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for RFQ creation", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	rfq := contracts.CreateRFQRequestToModel(&req)
	if err := h.RFQUseCase.CreateRFQ(ctx, rfq); err != nil {
		h.handleRFQError(ctx, w, err)
		return
	}

	h.Metrics.RecordOperation("rfq", "create")
	h.Logger.InfoContext(ctx, "RFQ created successfully in handler", "id", rfq.ID)
	h.API.Created(ctx, w, contracts.RFQModelToResponse(rfq))
}

// DraftHandler handles HTTP requests to preview the intake extraction
func (h *RFQHandler) DraftHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Draft RFQ handler called")

	var req contracts.DraftRFQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for RFQ draft", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for RFQ draft", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	draft, err := h.RFQUseCase.DraftRFQ(ctx, req.IntakeText)
	if err != nil {
		h.handleRFQError(ctx, w, err)
		return
	}

	response := &contracts.DraftRFQResponse{
		Areas:           draft.Areas,
		Welfare:         draft.Welfare,
		DeliveryWindows: draft.DeliveryWindows,
		PaymentTerms:    draft.PaymentTerms,
		Items:           contracts.LineItemModelsToResponses(draft.Items),
	}
	if len(draft.Items) > 0 {
		response.TargetPrice = draft.Items[0].TargetPrice
	}

	h.Logger.InfoContext(ctx, "RFQ draft composed in handler", "areas", response.Areas)
	h.API.Success(ctx, w, response)
}

// GetByIDHandler handles HTTP requests to retrieve an RFQ by ID
func (h *RFQHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get RFQ by ID handler called")

	req := contracts.GetRFQByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for get RFQ by ID", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	rfq, err := h.RFQUseCase.GetRFQByID(ctx, req.ID)
	if err != nil {
		h.handleRFQError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "RFQ retrieved by ID", "id", rfq.ID)
	h.API.Success(ctx, w, contracts.RFQModelToResponse(rfq))
}

// ExportCSVHandler handles HTTP requests to download an RFQ as CSV
func (h *RFQHandler) ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Export RFQ CSV handler called")

	req := contracts.GetRFQByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for RFQ export", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	data, filename, err := h.RFQUseCase.ExportCSV(ctx, req.ID)
	if err != nil {
		h.handleRFQError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "RFQ exported in handler", "id", req.ID, "filename", filename)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.Logger.ErrorContext(ctx, "Failed to write RFQ csv response", "id", req.ID, "error", err)
	}
}

// handleRFQError handles RFQ-related errors consistently
func (h *RFQHandler) handleRFQError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRFQNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}

// convertValidationErrors converts validator errors to API error details
func convertValidationErrors(validationErrors map[string]string) []api.ErrorDetail {
	errorDetails := make([]api.ErrorDetail, 0, len(validationErrors))
	for field, message := range validationErrors {
		errorDetails = append(errorDetails, api.ErrorDetail{
			Field:   field,
			Message: message,
		})
	}
	return errorDetails
}
