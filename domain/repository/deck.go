package repository

import (
	"context"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// Deck interface defines the contract for deck-related database operations
type Deck interface {
	// ListFacts retrieves all deck facts, newest first
	ListFacts(ctx context.Context) ([]*model.Fact, error)
	// AddFact adds a new fact to the deck
	AddFact(ctx context.Context, fact *model.Fact) error
	// GetProgress returns the deck progress value (0 when unset)
	GetProgress(ctx context.Context) (int, error)
	// SetProgress stores the deck progress value
	SetProgress(ctx context.Context, value int) error
	// EnsureProfile creates the deck profile row with its starting
	// progress if it does not exist yet
	EnsureProfile(ctx context.Context) error
}
