package gifts

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const geminiModelName = "gemini-2.5-flash"

// suggestionSchema is the enforced output contract: the model must emit a
// machine-parseable array of suggestion objects instead of free text.
var suggestionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "The name of the gift idea.",
			},
			"reason": {
				Type:        genai.TypeString,
				Description: "A brief explanation why this gift would be suitable for the person.",
			},
			"estimated_price": {
				Type:        genai.TypeString,
				Description: `A rough price range for the gift (e.g., "$20-30", "approx. $100").`,
			},
		},
		Required: []string{"name", "reason", "estimated_price"},
	},
}

// geminiModel implements textModel against the real Gemini API.
type geminiModel struct {
	client *genai.Client
}

func newGeminiModel(ctx context.Context, apiKey string) (*geminiModel, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiModel{client: client}, nil
}

func (m *geminiModel) generateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, geminiModelName, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   suggestionSchema,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
