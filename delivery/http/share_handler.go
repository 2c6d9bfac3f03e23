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

// ShareHandler handles HTTP requests for the public client share view
type ShareHandler struct {
	// CompareUseCase resolves share tokens and builds the proposal rows
	CompareUseCase usecase.CompareUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewShareHandler creates a new instance of ShareHandler
func NewShareHandler(compareUseCase usecase.CompareUseCase, appLogger logger.LoggerInterface) *ShareHandler {
	return &ShareHandler{
		CompareUseCase: compareUseCase,
		Logger:         appLogger,
		API:            api.New(),
	}
}

// SharedViewHandler handles HTTP requests for the tokenized client view.
// It exposes only what a buyer should see: the request summary and the
// proposed options with story links, cheapest landed cost first.
func (h *ShareHandler) SharedViewHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Shared view handler called")

	req := contracts.GetSharedRFQRequest{
		ID:    chi.URLParam(r, "id"),
		Token: chi.URLParam(r, "token"),
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for shared view", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	rfq, rows, err := h.CompareUseCase.SharedComparison(ctx, req.ID, req.Token)
	if err != nil {
		h.handleShareError(ctx, w, err)
		return
	}

	response := &contracts.ShareResponse{
		ClientName:      rfq.ClientName,
		Areas:           rfq.Areas,
		DeliveryWindows: rfq.DeliveryWindows,
		Items:           contracts.LineItemModelsToResponses(rfq.Items),
		Rows:            contracts.CostingRowsToShareRows(rows),
	}

	h.Logger.InfoContext(ctx, "Shared view composed successfully", "rfqID", req.ID, "rows", len(response.Rows))
	h.API.Success(ctx, w, response)
}

// handleShareError handles share-view errors consistently
func (h *ShareHandler) handleShareError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRFQNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}
