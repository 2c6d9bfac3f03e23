package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eggmansigma/zuckmyeggs/domain"
	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// DeckUseCase defines the interface for the pitch deck content
type DeckUseCase interface {
	// GetDeck retrieves the talking points (newest first) and the progress
	// gauge value
	GetDeck(ctx context.Context) ([]*model.Fact, int, error)
	// AddFact records a new talking point
	AddFact(ctx context.Context, text string) (*model.Fact, error)
	// SetProgress stores the progress gauge, clamped to 0..100, and
	// returns the stored value
	SetProgress(ctx context.Context, value int) (int, error)
}

// deckUseCase implements the DeckUseCase interface
type deckUseCase struct {
	// deckRepo is the repository interface for deck database operations
	deckRepo repository.Deck
	// logger is used for logging operations within the usecase
	logger logger.LoggerInterface
}

// NewDeckUseCase creates a new instance of deckUseCase
func NewDeckUseCase(deckRepo repository.Deck, appLogger logger.LoggerInterface) DeckUseCase {
	return &deckUseCase{
		deckRepo: deckRepo,
		logger:   appLogger,
	}
}

// GetDeck retrieves the talking points and progress gauge
func (uc *deckUseCase) GetDeck(ctx context.Context) ([]*model.Fact, int, error) {
	uc.logger.InfoContext(ctx, "Getting deck content in usecase")

	facts, err := uc.deckRepo.ListFacts(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error listing deck facts", "error", err)
		return nil, 0, fmt.Errorf("error listing facts: %w", err)
	}

	progress, err := uc.deckRepo.GetProgress(ctx)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Error getting deck progress", "error", err)
		return nil, 0, fmt.Errorf("error getting progress: %w", err)
	}

	uc.logger.InfoContext(ctx, "Deck content retrieved in usecase", "facts", len(facts), "progress", progress)
	return facts, progress, nil
}

// AddFact records a new talking point
func (uc *deckUseCase) AddFact(ctx context.Context, text string) (*model.Fact, error) {
	uc.logger.InfoContext(ctx, "Adding deck fact in usecase")

	text = strings.TrimSpace(text)
	if text == "" {
		uc.logger.WarnContext(ctx, "Rejected blank deck fact")
		return nil, domain.ErrFactTextRequired
	}

	fact := &model.Fact{Text: text}
	if err := uc.deckRepo.AddFact(ctx, fact); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to add deck fact in repository", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "Deck fact added in usecase", "id", fact.ID)
	return fact, nil
}

// SetProgress stores the progress gauge, clamped to 0..100
func (uc *deckUseCase) SetProgress(ctx context.Context, value int) (int, error) {
	clamped := clampPercent(value)
	uc.logger.InfoContext(ctx, "Setting deck progress in usecase", "value", value, "clamped", clamped)

	if err := uc.deckRepo.SetProgress(ctx, clamped); err != nil {
		uc.logger.ErrorContext(ctx, "Failed to set deck progress in repository", "value", clamped, "error", err)
		return 0, err
	}

	uc.logger.InfoContext(ctx, "Deck progress set in usecase", "value", clamped)
	return clamped, nil
}

// clampPercent bounds a gauge value to 0..100
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
