package gifts

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"freundebuch/internal/models"
)

type fakeModel struct {
	response string
	err      error
	prompt   string
}

func (m *fakeModel) generateJSON(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newTestGenerator(m *fakeModel) *Generator {
	return &Generator{
		model:  m,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGiftSuggestions(t *testing.T) {
	ctx := context.Background()
	friend := models.Friend{
		ID:            "f1",
		Name:          "Lena",
		Hobbies:       "Lesen, Wandern",
		FavoriteColor: "Grün",
		FavoriteFood:  "Pasta",
		Notes:         "Mag keine Technik.",
	}

	t.Run("well-formed response parses verbatim", func(t *testing.T) {
		m := &fakeModel{response: `[{"name":"Buch","reason":"Sie liest gern.","estimated_price":"$15-20"}]`}
		g := newTestGenerator(m)

		suggestions, err := g.GiftSuggestions(ctx, friend)
		if err != nil {
			t.Fatalf("GiftSuggestions failed: %v", err)
		}

		if len(suggestions) != 1 {
			t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
		}
		s := suggestions[0]
		if s.Name != "Buch" || s.Reason != "Sie liest gern." || s.EstimatedPrice != "$15-20" {
			t.Errorf("Fields not verbatim: %+v", s)
		}
	})

	t.Run("truncated JSON returns the fixed error", func(t *testing.T) {
		m := &fakeModel{response: `[{"name":"Buch","reason":"Sie lie`}
		g := newTestGenerator(m)

		_, err := g.GiftSuggestions(ctx, friend)
		if !errors.Is(err, ErrGeneration) {
			t.Fatalf("Expected ErrGeneration, got %v", err)
		}
		if err.Error() != "Could not generate gift suggestions" {
			t.Errorf("Unexpected user-facing message: %q", err.Error())
		}
	})

	t.Run("missing required field rejects the response", func(t *testing.T) {
		m := &fakeModel{response: `[{"name":"Buch","reason":"Sie liest gern."}]`}
		g := newTestGenerator(m)

		if _, err := g.GiftSuggestions(ctx, friend); !errors.Is(err, ErrGeneration) {
			t.Fatalf("Expected ErrGeneration, got %v", err)
		}
	})

	t.Run("non-array response rejects", func(t *testing.T) {
		m := &fakeModel{response: `{"name":"Buch"}`}
		g := newTestGenerator(m)

		if _, err := g.GiftSuggestions(ctx, friend); !errors.Is(err, ErrGeneration) {
			t.Fatalf("Expected ErrGeneration, got %v", err)
		}
	})

	t.Run("model error maps to the fixed error", func(t *testing.T) {
		m := &fakeModel{err: errors.New("api unreachable")}
		g := newTestGenerator(m)

		if _, err := g.GiftSuggestions(ctx, friend); !errors.Is(err, ErrGeneration) {
			t.Fatalf("Expected ErrGeneration, got %v", err)
		}
	})

	t.Run("count other than 5 is accepted", func(t *testing.T) {
		m := &fakeModel{response: `[]`}
		g := newTestGenerator(m)

		suggestions, err := g.GiftSuggestions(ctx, friend)
		if err != nil {
			t.Fatalf("Empty array should be accepted: %v", err)
		}
		if len(suggestions) != 0 {
			t.Errorf("Expected 0 suggestions, got %d", len(suggestions))
		}
	})

	t.Run("prompt embeds the friend's attributes", func(t *testing.T) {
		m := &fakeModel{response: `[]`}
		g := newTestGenerator(m)

		if _, err := g.GiftSuggestions(ctx, friend); err != nil {
			t.Fatalf("GiftSuggestions failed: %v", err)
		}

		for _, want := range []string{"Lena", "Lesen, Wandern", "Grün", "Pasta", "Mag keine Technik.", "5", "German"} {
			if !strings.Contains(m.prompt, want) {
				t.Errorf("Prompt missing %q:\n%s", want, m.prompt)
			}
		}
	})
}

func TestParseSuggestionsEmptyStringsAllowed(t *testing.T) {
	// Present-but-empty fields pass the boundary check; only missing keys fail.
	suggestions, err := parseSuggestions(`[{"name":"","reason":"","estimated_price":""}]`)
	if err != nil {
		t.Fatalf("parseSuggestions failed: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(suggestions))
	}
}
