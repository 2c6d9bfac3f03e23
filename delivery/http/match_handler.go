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

// MatchHandler handles HTTP requests for the supplier shortlist
type MatchHandler struct {
	// MatchUseCase contains business logic for supplier matching
	MatchUseCase usecase.MatchUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewMatchHandler creates a new instance of MatchHandler
func NewMatchHandler(matchUseCase usecase.MatchUseCase, appLogger logger.LoggerInterface) *MatchHandler {
	return &MatchHandler{
		MatchUseCase: matchUseCase,
		Logger:       appLogger,
		API:          api.New(),
	}
}

// ShortlistHandler handles HTTP requests for an RFQ's ranked supplier shortlist
func (h *MatchHandler) ShortlistHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Shortlist handler called")

	req := contracts.GetRFQByIDRequest{ID: chi.URLParam(r, "id")}
	if err := validator.ValidateStruct(&req); err != nil {
		h.Logger.WarnContext(ctx, "Validation failed for shortlist", "errors", err)
		h.API.ValidationError(ctx, w, convertValidationErrors(err))
		return
	}

	ranked, err := h.MatchUseCase.Shortlist(ctx, req.ID)
	if err != nil {
		h.handleMatchError(ctx, w, err)
		return
	}

	matches := make([]contracts.MatchResponse, len(ranked))
	for i, m := range ranked {
		matches[i] = contracts.MatchResponse{
			Supplier: *contracts.SupplierModelToResponse(&m.Supplier),
			Score:    m.Score,
			Outreach: contracts.OutreachResponse{
				Subject:  m.Outreach.Subject,
				Body:     m.Outreach.Body,
				Mailto:   m.Outreach.Mailto,
				WhatsApp: m.Outreach.WhatsApp,
				Tel:      m.Outreach.Tel,
			},
		}
	}

	h.Logger.InfoContext(ctx, "Shortlist composed successfully", "rfqID", req.ID, "matches", len(matches))
	h.API.Success(ctx, w, &contracts.MatchesListResponse{RFQID: req.ID, Matches: matches})
}

// handleMatchError handles shortlist-related errors consistently
func (h *MatchHandler) handleMatchError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRFQNotFound):
		h.API.NotFound(ctx, w, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}
