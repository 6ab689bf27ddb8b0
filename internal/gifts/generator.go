// Package gifts generates gift ideas for a friend via the Gemini API.
//
// Each request is a fresh call: no retry, no caching. Repeated calls for the
// same friend may return different suggestions.
package gifts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"freundebuch/internal/models"
)

// userMessage is the only error text screens ever show for a failed
// generation; the underlying cause is logged instead.
const userMessage = "Could not generate gift suggestions"

// ErrGeneration is returned for every failure building, sending or parsing a
// suggestion request.
var ErrGeneration = errors.New(userMessage)

var generations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "freundebuch_gift_generations_total",
	Help: "Gift suggestion requests by outcome.",
}, []string{"outcome"})

// textModel is the slice of the generative client the generator needs.
// Tests substitute a fake.
type textModel interface {
	generateJSON(ctx context.Context, prompt string) (string, error)
}

// Generator builds prompts, calls the model and validates its output.
type Generator struct {
	model  textModel
	logger *slog.Logger
}

// New creates a Generator backed by the Gemini API.
func New(ctx context.Context, apiKey string, logger *slog.Logger) (*Generator, error) {
	model, err := newGeminiModel(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	return &Generator{model: model, logger: logger}, nil
}

// GiftSuggestions asks the model for gift ideas for the given friend. The
// prompt requests exactly 5 German suggestions, but a response with any
// non-negative count is accepted.
func (g *Generator) GiftSuggestions(ctx context.Context, friend models.Friend) ([]models.GiftSuggestion, error) {
	raw, err := g.model.generateJSON(ctx, buildPrompt(friend))
	if err != nil {
		g.logger.Error("Gift generation request failed", "friend_id", friend.ID, "error", err)
		generations.WithLabelValues("error").Inc()
		return nil, ErrGeneration
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		g.logger.Error("Gift generation response rejected", "friend_id", friend.ID, "error", err)
		generations.WithLabelValues("error").Inc()
		return nil, ErrGeneration
	}

	generations.WithLabelValues("ok").Inc()
	g.logger.Info("Gift suggestions generated", "friend_id", friend.ID, "count", len(suggestions))
	return suggestions, nil
}

func buildPrompt(friend models.Friend) string {
	return fmt.Sprintf(`Based on the following information about my friend, please suggest 5 unique and thoughtful gift ideas in German.
- Name: %s
- Hobbies: %s
- Favorite Color: %s
- Favorite Food: %s
- Additional Notes: %s

Provide the response as a JSON array of objects.`,
		friend.Name, friend.Hobbies, friend.FavoriteColor, friend.FavoriteFood, friend.Notes)
}

// rawSuggestion uses pointer fields so a missing required key is
// distinguishable from an empty string.
type rawSuggestion struct {
	Name           *string `json:"name"`
	Reason         *string `json:"reason"`
	EstimatedPrice *string `json:"estimated_price"`
}

// parseSuggestions validates the model output at the boundary: the whole
// response is rejected if any element misses a required field.
func parseSuggestions(raw string) ([]models.GiftSuggestion, error) {
	var parsed []rawSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON suggestion array: %w", err)
	}

	suggestions := make([]models.GiftSuggestion, 0, len(parsed))
	for i, s := range parsed {
		if s.Name == nil || s.Reason == nil || s.EstimatedPrice == nil {
			return nil, fmt.Errorf("suggestion %d is missing a required field", i)
		}
		suggestions = append(suggestions, models.GiftSuggestion{
			Name:           *s.Name,
			Reason:         *s.Reason,
			EstimatedPrice: *s.EstimatedPrice,
		})
	}

	return suggestions, nil
}
