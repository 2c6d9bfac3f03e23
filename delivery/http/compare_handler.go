package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eggmansigma/zuckmyeggs/contracts"
	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/pkg/api"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/pkg/validator"
	"github.com/eggmansigma/zuckmyeggs/usecase"
)

// CompareHandler handles HTTP requests for the landed-cost comparison
type CompareHandler struct {
	// CompareUseCase contains business logic for the quote comparison
	CompareUseCase usecase.CompareUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewCompareHandler creates a new instance of CompareHandler
func NewCompareHandler(compareUseCase usecase.CompareUseCase, appLogger logger.LoggerInterface) *CompareHandler {
	return &CompareHandler{
		CompareUseCase: compareUseCase,
		Logger:         appLogger,
		API:            api.New(),
	}
}

// ComparisonHandler handles HTTP requests for an RFQ's landed-cost rows
func (h *CompareHandler) ComparisonHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Comparison handler called")

	req := contracts.GetRFQByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for comparison", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	rows, err := h.CompareUseCase.ComparisonRows(ctx, req.ID)
	if err != nil {
		h.handleCompareError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Comparison composed successfully", "rfqID", req.ID, "rows", len(rows))
	h.API.Success(ctx, w, &contracts.ComparisonResponse{RFQID: req.ID, Rows: contracts.CostingRowsToResponses(rows)})
}

// handleCompareError handles comparison-related errors consistently
func (h *CompareHandler) handleCompareError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRFQNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}
