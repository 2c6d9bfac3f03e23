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

// QuoteHandler handles HTTP requests for quote operations
type QuoteHandler struct {
	// QuoteUseCase contains business logic for quote operations
	QuoteUseCase usecase.QuoteUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Metrics records domain operation counters
	Metrics *metrics.HTTPMetrics
}

// NewQuoteHandler creates a new instance of QuoteHandler
func NewQuoteHandler(quoteUseCase usecase.QuoteUseCase, appLogger logger.LoggerInterface, appMetrics *metrics.HTTPMetrics) *QuoteHandler {
	return &QuoteHandler{
		QuoteUseCase: quoteUseCase,
		Logger:       appLogger,
		API:          api.New(),
		Metrics:      appMetrics,
	}
}

// AddHandler handles HTTP requests to record a supplier quote against an RFQ
func (h *QuoteHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Add quote handler called")

	rfqReq := contracts.GetRFQByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&rfqReq); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for quote rfq reference", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	var req contracts.AddQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for quote", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for quote", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	quote := contracts.AddQuoteRequestToModel(&req, rfqReq.ID)
	if err := h.QuoteUseCase.AddQuote(ctx, quote); err != nil {
		h.handleQuoteError(ctx, w, err)
		return
	}

	h.Metrics.RecordOperation("quote", "add")
	h.Logger.InfoContext(ctx, "Quote added successfully in handler", "id", quote.ID)
	h.API.Created(ctx, w, contracts.QuoteModelToResponse(quote))
}

// ListHandler handles HTTP requests to list the quotes recorded for an RFQ
func (h *QuoteHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "List quotes handler called")

	req := contracts.GetRFQByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for list quotes", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	quotes, err := h.QuoteUseCase.ListQuotesByRFQ(ctx, req.ID)
	if err != nil {
		h.handleQuoteError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Quotes listed successfully", "rfqID", req.ID, "count", len(quotes))
	h.API.Success(ctx, w, &contracts.QuotesListResponse{Quotes: contracts.QuoteModelsToResponses(quotes)})
}

// handleQuoteError handles quote-related errors consistently
func (h *QuoteHandler) handleQuoteError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRFQNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrSupplierNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrLineItemNotFound):
		h.API.Error(ctx, w, http.StatusUnprocessableEntity, &api.Error{
			Code:    "UNPROCESSABLE_ENTITY",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnitPriceInvalid):
		h.API.BadRequest(ctx, w, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}
