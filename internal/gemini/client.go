// Package gemini adapts the Google GenAI SDK to the advisor's Generator
// interface.
package gemini

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/smartlife/ai-backend/internal/advisor"
	"github.com/smartlife/ai-backend/internal/domain"
)

// generateContentAction marks models usable for free-form text generation.
const generateContentAction = "generateContent"

// Client talks to the Gemini API. A missing key is not fatal at
// construction time: Enabled reports false and every call short-circuits
// with advisor.ErrMissingAPIKey, which routes callers into their fallbacks.
type Client struct {
	apiKey string
	log    zerolog.Logger
}

// NewClient creates a Gemini-backed generator. apiKey may be empty.
func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{apiKey: apiKey, log: log}
}

// Enabled reports whether a Gemini credential is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// sdkClient builds a fresh SDK client per call. Provider sessions are
// deliberately not reused across requests.
func (c *Client) sdkClient(ctx context.Context) (*genai.Client, error) {
	if c.apiKey == "" {
		return nil, advisor.ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return client, nil
}

// ListModelIDs returns the identifiers that currently support text
// generation for this credential.
func (c *Client) ListModelIDs(ctx context.Context) ([]string, error) {
	client, err := c.sdkClient(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("gemini: list models: %w", err)
		}
		for _, action := range model.SupportedActions {
			if action == generateContentAction {
				ids = append(ids, model.Name)
				break
			}
		}
	}

	c.log.Debug().Int("count", len(ids)).Msg("Listed generation-capable models")
	return ids, nil
}

// GenerateText sends a single prompt and returns the raw model text.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	client, err := c.sdkClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return responseText(resp, model)
}

// GenerateChat sends a message with a system persona and prior turns.
// Caller-side roles are mapped into Gemini's user/model vocabulary.
func (c *Client) GenerateChat(ctx context.Context, model, system string, history []domain.ConversationTurn, message string) (string, error) {
	client, err := c.sdkClient(ctx)
	if err != nil {
		return "", err
	}

	var config *genai.GenerateContentConfig
	if system != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: system}},
			},
		}
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  advisor.MapRole(turn.Role),
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  advisor.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate chat content: %w", err)
	}

	return responseText(resp, model)
}

func responseText(resp *genai.GenerateContentResponse, model string) (string, error) {
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response from model %s", model)
	}
	return text, nil
}
