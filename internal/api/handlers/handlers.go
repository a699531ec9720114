package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/smartlife/ai-backend/internal/advisor"
	"github.com/smartlife/ai-backend/internal/api/middleware"
	"github.com/smartlife/ai-backend/internal/domain"
)

// AdvisorService is the slice of the orchestration service the HTTP layer
// needs. It is an interface so handler tests can run against a mock.
type AdvisorService interface {
	AnalyzeSpending(ctx context.Context, txs []domain.Transaction, userGoal string) (domain.Insight, error)
	ChatWithAdvisor(ctx context.Context, message string, history []domain.ConversationTurn, contextData string) string
	ParseScheduleCommand(ctx context.Context, command, currentDate string) domain.ScheduleExtraction
	AIEnabled() bool
}

// FinanceHandler serves the three AI endpoints plus the health check.
type FinanceHandler struct {
	svc AdvisorService
	log zerolog.Logger
}

// NewFinanceHandler creates the handler set.
func NewFinanceHandler(svc AdvisorService, log zerolog.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: log}
}

// AnalyzeFinance handles POST /analyze_finance.
func (h *FinanceHandler) AnalyzeFinance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Transactions []domain.Transaction `json:"transactions"`
		UserGoal     string               `json:"user_goal"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	insight, err := h.svc.AnalyzeSpending(r.Context(), req.Transactions, req.UserGoal)
	if err != nil {
		var aggErr *advisor.AggregationError
		if errors.As(err, &aggErr) {
			middleware.WriteError(w, http.StatusBadRequest, aggErr.Error())
			return
		}
		h.log.Error().Err(err).Msg("Failed to analyze spending")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to analyze spending")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, insight)
}

// ChatFinance handles POST /chat_finance. The service never fails: a
// degraded reply is still a 200 with a response string.
func (h *FinanceHandler) ChatFinance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string                    `json:"message"`
		History []domain.ConversationTurn `json:"history"`
		Context string                    `json:"context"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		middleware.WriteError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.svc.ChatWithAdvisor(r.Context(), req.Message, req.History, req.Context)

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// ParseSchedule handles POST /parse_schedule. The result is always a
// well-formed ScheduleExtraction union, so the status is always 200 once
// the body decodes.
func (h *FinanceHandler) ParseSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Command     string `json:"command"`
		CurrentDate string `json:"current_date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Command == "" {
		middleware.WriteError(w, http.StatusBadRequest, "command is required")
		return
	}

	event := h.svc.ParseScheduleCommand(r.Context(), req.Command, req.CurrentDate)

	middleware.WriteJSON(w, http.StatusOK, event)
}

// Health handles GET /health.
func (h *FinanceHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"ai_enabled": h.svc.AIEnabled(),
	})
}
