package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
	"github.com/eggmansigma/zuckmyeggs/domain/repository"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// initialProgress is the gauge value a fresh deck profile starts at
const initialProgress = 20

// deckRepository implements the Deck repository interface using gorm
type deckRepository struct {
	// db is the GORM database instance for database operations
	db *gorm.DB
	// logger is used for logging operations within the repository
	logger logger.LoggerInterface
}

// NewDeckRepository creates a new instance of deckRepository
func NewDeckRepository(db *gorm.DB, logger logger.LoggerInterface) repository.Deck {
	return &deckRepository{
		db:     db,
		logger: logger,
	}
}

// ListFacts retrieves all deck facts, newest first
func (r *deckRepository) ListFacts(ctx context.Context) ([]*model.Fact, error) {
	r.logger.InfoContext(ctx, "Listing deck facts")
	var facts []*model.Fact
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&facts).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to list deck facts", "error", err)
		return nil, fmt.Errorf("failed to list facts: %w", err)
	}
	r.logger.InfoContext(ctx, "Deck facts listed", "count", len(facts))
	return facts, nil
}

// AddFact adds a new fact to the deck
func (r *deckRepository) AddFact(ctx context.Context, fact *model.Fact) error {
	r.logger.InfoContext(ctx, "Adding deck fact")
	if err := r.db.WithContext(ctx).Create(fact).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to add deck fact", "error", err)
		return fmt.Errorf("failed to add fact: %w", err)
	}
	r.logger.InfoContext(ctx, "Deck fact added", "id", fact.ID)
	return nil
}

// GetProgress returns the deck progress value, zero when the profile row
// does not exist
func (r *deckRepository) GetProgress(ctx context.Context) (int, error) {
	var profile model.DeckProfile
	if err := r.db.WithContext(ctx).Where("id = ?", 1).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		r.logger.ErrorContext(ctx, "Failed to get deck progress", "error", err)
		return 0, fmt.Errorf("failed to get progress: %w", err)
	}
	return profile.ProgressValue, nil
}

// SetProgress stores the deck progress value, creating the profile row if
// it is missing
func (r *deckRepository) SetProgress(ctx context.Context, value int) error {
	r.logger.InfoContext(ctx, "Setting deck progress", "value", value)
	res := r.db.WithContext(ctx).Model(&model.DeckProfile{}).Where("id = ?", 1).Update("progress_value", value)
	if res.Error != nil {
		r.logger.ErrorContext(ctx, "Failed to set deck progress", "value", value, "error", res.Error)
		return fmt.Errorf("failed to set progress: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		profile := &model.DeckProfile{ID: 1, ProgressValue: value}
		if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
			r.logger.ErrorContext(ctx, "Failed to create deck profile", "error", err)
			return fmt.Errorf("failed to create profile: %w", err)
		}
	}
	r.logger.InfoContext(ctx, "Deck progress set", "value", value)
	return nil
}

// EnsureProfile creates the deck profile row with its starting progress if
// it does not exist yet
func (r *deckRepository) EnsureProfile(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.DeckProfile{}).Where("id = ?", 1).Count(&count).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to check deck profile", "error", err)
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if count > 0 {
		return nil
	}
	profile := &model.DeckProfile{ID: 1, ProgressValue: initialProgress}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		r.logger.ErrorContext(ctx, "Failed to create deck profile", "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}
	r.logger.InfoContext(ctx, "Deck profile created", "progress", initialProgress)
	return nil
}
