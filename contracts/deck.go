// Package contracts contains request and response contracts for the RFQ desk HTTP API
package contracts

import (
	"time"

	"github.com/eggmansigma/zuckmyeggs/domain/model"
)

// AddFactRequest represents the request payload for adding a deck talking point
type AddFactRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// SetProgressRequest represents the request payload for moving the fundraise
// progress bar. Values outside 0..100 are clamped, not rejected.
type SetProgressRequest struct {
	Value int `json:"value"`
}

// FactResponse represents the response payload for a deck talking point
type FactResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// DeckResponse represents the deck content: talking points plus progress
type DeckResponse struct {
	Facts    []FactResponse `json:"facts"`
	Progress int            `json:"progress"`
}

// ProgressResponse represents the stored progress value
type ProgressResponse struct {
	Progress int `json:"progress"`
}

// FactModelToResponse converts model.Fact to FactResponse
func FactModelToResponse(fact *model.Fact) *FactResponse {
	return &FactResponse{
		ID:        fact.ID,
		Text:      fact.Text,
		CreatedAt: fact.CreatedAt.Format(time.RFC3339),
	}
}

// FactModelsToResponses converts a slice of model.Fact to responses
func FactModelsToResponses(facts []*model.Fact) []FactResponse {
	responses := make([]FactResponse, len(facts))
	for i, fact := range facts {
		responses[i] = *FactModelToResponse(fact)
	}
	return responses
}
