package advisor

import (
	"context"

	"github.com/smartlife/ai-backend/internal/domain"
)

// Generator is the generative-model provider as seen by the orchestration
// layer. The concrete implementation lives in internal/gemini; tests swap
// in function-field mocks.
type Generator interface {
	// Enabled reports whether a credential is configured at all.
	Enabled() bool

	// ListModelIDs returns the identifiers currently usable for free-form
	// text generation. A failure here is never fatal to a request; the
	// selector falls back to a hardcoded default.
	ListModelIDs(ctx context.Context) ([]string, error)

	// GenerateText sends one prompt and returns the raw model text.
	GenerateText(ctx context.Context, model, prompt string) (string, error)

	// GenerateChat sends a message with an optional system persona and
	// prior conversation turns, returning the raw model text.
	GenerateChat(ctx context.Context, model, system string, history []domain.ConversationTurn, message string) (string, error)
}
