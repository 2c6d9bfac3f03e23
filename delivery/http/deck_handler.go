package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eggmansigma/zuckmyeggs/contracts"
	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/pkg/api"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
	"github.com/eggmansigma/zuckmyeggs/pkg/metrics"
	"github.com/eggmansigma/zuckmyeggs/pkg/validator"
	"github.com/eggmansigma/zuckmyeggs/usecase"
)

// DeckHandler handles HTTP requests for the investor deck content
type DeckHandler struct {
	// DeckUseCase contains business logic for deck operations
	DeckUseCase usecase.DeckUseCase
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
	// Metrics records domain operation counters
	Metrics *metrics.HTTPMetrics
}

// NewDeckHandler creates a new instance of DeckHandler
func NewDeckHandler(deckUseCase usecase.DeckUseCase, appLogger logger.LoggerInterface, appMetrics *metrics.HTTPMetrics) *DeckHandler {
	return &DeckHandler{
		DeckUseCase: deckUseCase,
		Logger:      appLogger,
		API:         api.New(),
		Metrics:     appMetrics,
	}
}

// GetHandler handles HTTP requests for the deck facts and progress gauge
func (h *DeckHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Get deck handler called")

	facts, progress, err := h.DeckUseCase.GetDeck(ctx)
	if err != nil {
		h.handleDeckError(ctx, w, err)
		return
	}

	h.Logger.InfoContext(ctx, "Deck retrieved successfully", "facts", len(facts), "progress", progress)
	h.API.Success(ctx, w, &contracts.DeckResponse{
		Facts:    contracts.FactModelsToResponses(facts),
		Progress: progress,
	})
}

// AddFactHandler handles HTTP requests to record a new talking point
func (h *DeckHandler) AddFactHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Add deck fact handler called")

	var req contracts.AddFactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for deck fact", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	validationErrors := validator.ValidateStruct(&req)
	if validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for deck fact", "errors", validationErrors)
		h.API.ValidationError(ctx, w, convertValidationErrors(validationErrors))
		return
	}

	fact, err := h.DeckUseCase.AddFact(ctx, req.Text)
	if err != nil {
		h.handleDeckError(ctx, w, err)
		return
	}

	h.Metrics.RecordOperation("deck", "add_fact")
	h.Logger.InfoContext(ctx, "Deck fact added successfully", "id", fact.ID)
	h.API.Created(ctx, w, contracts.FactModelToResponse(fact))
}

// SetProgressHandler handles HTTP requests to move the fundraise progress bar
func (h *DeckHandler) SetProgressHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Set deck progress handler called")

	var req contracts.SetProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.ErrorContext(ctx, "Invalid request body for deck progress", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	stored, err := h.DeckUseCase.SetProgress(ctx, req.Value)
	if err != nil {
		h.handleDeckError(ctx, w, err)
		return
	}

	h.Metrics.RecordOperation("deck", "set_progress")
	h.Logger.InfoContext(ctx, "Deck progress set successfully", "value", stored)
	h.API.Success(ctx, w, &contracts.ProgressResponse{Progress: stored})
}

// handleDeckError handles deck-related errors consistently
func (h *DeckHandler) handleDeckError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrFactTextRequired):
		h.API.BadRequest(ctx, w, err.Error())
	default:
		h.API.InternalServerError(ctx, w, "Internal server error")
	}
}
