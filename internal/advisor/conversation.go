package advisor

import (
	"fmt"

	"github.com/smartlife/ai-backend/internal/domain"
)

// Provider-side role vocabulary. Gemini chats are two-party: user and model.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// WindowHistory keeps only the most recent max turns, preserving order.
// Older turns are silently dropped. The function is stateless; the caller
// resupplies the full history on every request.
func WindowHistory(history []domain.ConversationTurn, max int) []domain.ConversationTurn {
	if max <= 0 || len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}

// MapRole converts a caller-side role into the provider vocabulary.
// Anything that is not "user" counts as the model side.
func MapRole(role string) string {
	if role == RoleUser {
		return RoleUser
	}
	return RoleModel
}

// ApplyContext prepends the per-request context block to the current
// message. The context applies to this turn only and is never injected
// into history.
func ApplyContext(contextData, message string) string {
	if contextData == "" {
		return message
	}
	return fmt.Sprintf("[CONTEXT]: %s\n\n[QUESTION]: %s", contextData, message)
}
