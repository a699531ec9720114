package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartlife/ai-backend/internal/domain"
)

// Defaults for the knobs the deployments never settled on. All of them are
// overridable through Config.
const (
	DefaultFallbackModel = "gemini-1.5-flash"
	DefaultHistoryWindow = 10
	DefaultCallTimeout   = 30 * time.Second
)

// DefaultPreferredModels is ordered fast/cheap first.
var DefaultPreferredModels = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-pro"}

// User-facing degradation messages for the chat endpoint. Quota exhaustion
// gets its own message because the remediation differs: wait, don't
// reconfigure.
const (
	quotaChatReply = "The AI quota for today has been exhausted. The free tier limits how many questions can be asked - please try again later!"
	setupChatReply = "The AI advisor is not configured yet: no Gemini API key was found. Set GEMINI_API_KEY and restart the server."
	errorChatReply = "Sorry, I'm having trouble reaching the AI service right now. Please try again in a moment!"
)

// scheduleFallbackMessage is the fixed error variant returned whenever the
// provider path fails for /parse_schedule.
const scheduleFallbackMessage = "Could not understand this command. Please try again with clearer wording."

// Config carries the orchestration tunables.
type Config struct {
	PreferredModels []string
	FallbackModel   string
	HistoryWindow   int
	CallTimeout     time.Duration
}

// Service sequences aggregation, model selection, prompt construction,
// the provider call and response interpretation for the three operations.
// It holds no per-request state; one instance serves all requests.
type Service struct {
	gen      Generator
	selector *ModelSelector
	cfg      Config
	log      zerolog.Logger
}

// NewService wires a Service over the given generator. Zero-value config
// fields fall back to the package defaults.
func NewService(gen Generator, cfg Config, log zerolog.Logger) *Service {
	if len(cfg.PreferredModels) == 0 {
		cfg.PreferredModels = DefaultPreferredModels
	}
	if cfg.FallbackModel == "" {
		cfg.FallbackModel = DefaultFallbackModel
	}
	if cfg.HistoryWindow == 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}

	return &Service{
		gen:      gen,
		selector: NewModelSelector(gen, cfg.PreferredModels, cfg.FallbackModel, log),
		cfg:      cfg,
		log:      log,
	}
}

// AIEnabled reports whether provider-dependent branches are live at all.
func (s *Service) AIEnabled() bool {
	return s.gen.Enabled()
}

// AnalyzeSpending aggregates the transactions and asks the model for an
// insight. Malformed input is the only error a caller can see; every
// provider-path failure degrades to a locally synthesized insight.
func (s *Service) AnalyzeSpending(ctx context.Context, txs []domain.Transaction, userGoal string) (domain.Insight, error) {
	summary, err := AggregateSpending(txs)
	if err != nil {
		return domain.Insight{}, err
	}
	if summary.Empty() {
		return noExpensesInsight, nil
	}

	prompt := BuildInsightPrompt(summary, userGoal)

	raw, err := s.generateText(ctx, prompt)
	if err != nil {
		s.logProviderFailure(err, "analyze_finance")
		return fallbackInsight(summary), nil
	}

	insight, err := ParseInsight(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("Model returned malformed insight, using local fallback")
		return fallbackInsight(summary), nil
	}

	return insight, nil
}

// ChatWithAdvisor runs one advisory turn. It always returns a reply string:
// irrecoverable failures become a short apology that distinguishes quota
// exhaustion and missing configuration from generic trouble.
func (s *Service) ChatWithAdvisor(ctx context.Context, message string, history []domain.ConversationTurn, contextData string) string {
	windowed := WindowHistory(history, s.cfg.HistoryWindow)
	userMessage := ApplyContext(contextData, message)

	model := s.selector.Select(ctx)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	reply, err := s.gen.GenerateChat(callCtx, model, advisorSystemInstruction, windowed, userMessage)
	if err != nil {
		err = ClassifyProviderError(err)
		s.logProviderFailure(err, "chat_finance")
		switch {
		case errors.Is(err, ErrQuotaExceeded):
			return quotaChatReply
		case errors.Is(err, ErrMissingAPIKey):
			return setupChatReply
		default:
			return errorChatReply
		}
	}

	return reply
}

// ParseScheduleCommand extracts a calendar event from a natural-language
// command. The result is always well-formed: any failure yields the fixed
// error variant, never a partially populated event.
func (s *Service) ParseScheduleCommand(ctx context.Context, command, currentDate string) domain.ScheduleExtraction {
	prompt := BuildSchedulePrompt(command, currentDate)

	raw, err := s.generateText(ctx, prompt)
	if err != nil {
		s.logProviderFailure(err, "parse_schedule")
		return domain.ScheduleError(scheduleFallbackMessage)
	}

	event, err := ParseSchedule(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("Model returned malformed schedule event, using error fallback")
		return domain.ScheduleError(scheduleFallbackMessage)
	}

	return event
}

// generateText selects a model and runs one bounded text-generation call.
func (s *Service) generateText(ctx context.Context, prompt string) (string, error) {
	model := s.selector.Select(ctx)

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	raw, err := s.gen.GenerateText(callCtx, model, prompt)
	if err != nil {
		return "", ClassifyProviderError(err)
	}
	return raw, nil
}

func (s *Service) logProviderFailure(err error, endpoint string) {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		s.log.Warn().Str("endpoint", endpoint).Msg("AI disabled: no API key configured")
	case errors.Is(err, ErrQuotaExceeded):
		s.log.Warn().Str("endpoint", endpoint).Msg("Provider quota exceeded")
	default:
		s.log.Error().Err(err).Str("endpoint", endpoint).Msg("Provider call failed")
	}
}

// fallbackInsight synthesizes a usable insight from the aggregate alone,
// with no provider involvement.
func fallbackInsight(summary domain.SpendingSummary) domain.Insight {
	return domain.Insight{
		Insight: fmt.Sprintf("Your biggest spending category is %s at %s. Consider cutting back there.",
			summary.TopCategory, summary.TopAmount.String()),
		Actions: []string{
			fmt.Sprintf("Set a monthly limit for %s", summary.TopCategory),
			"Look for cheaper alternatives",
			"Track this category closely next week",
		},
	}
}
