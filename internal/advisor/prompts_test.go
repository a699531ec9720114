package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsightPromptIsDeterministic(t *testing.T) {
	summary, err := AggregateSpending(expenseList())
	require.NoError(t, err)

	first := BuildInsightPrompt(summary, "save for a trip")
	second := BuildInsightPrompt(summary, "save for a trip")

	assert.Equal(t, first, second)
}

func TestBuildInsightPromptEmbedsBreakdown(t *testing.T) {
	summary, err := AggregateSpending(expenseList())
	require.NoError(t, err)

	prompt := BuildInsightPrompt(summary, "")

	assert.Contains(t, prompt, "spent a total of 180")
	assert.Contains(t, prompt, "'Food' at 150")
	assert.Contains(t, prompt, "- Food: 150\n")
	assert.Contains(t, prompt, "- Transport: 30\n")
	assert.Contains(t, prompt, "exactly 3 concrete actions")
	assert.Contains(t, prompt, "Return ONLY valid raw JSON")
	assert.NotContains(t, prompt, "stated goal")

	// The breakdown must appear in ranked order.
	assert.Less(t, strings.Index(prompt, "- Food:"), strings.Index(prompt, "- Transport:"))
}

func TestBuildInsightPromptIncludesUserGoal(t *testing.T) {
	summary, err := AggregateSpending(expenseList())
	require.NoError(t, err)

	prompt := BuildInsightPrompt(summary, "save 500 per month")

	assert.Contains(t, prompt, "The user's stated goal: save 500 per month")
}

func TestBuildSchedulePrompt(t *testing.T) {
	prompt := BuildSchedulePrompt("gym next Friday at 6pm", "2026-08-31")

	assert.Contains(t, prompt, "Current Date: 2026-08-31")
	assert.Contains(t, prompt, `User Command: "gym next Friday at 6pm"`)
	assert.Contains(t, prompt, "0=Sunday")
	assert.Contains(t, prompt, `default "start_time" to "08:00"`)
	assert.Contains(t, prompt, "default 1 hour after start")
	assert.Contains(t, prompt, `{"error": "Not a schedule command"}`)
	assert.Contains(t, prompt, "Do NOT wrap the response in code fences")

	assert.Equal(t, prompt, BuildSchedulePrompt("gym next Friday at 6pm", "2026-08-31"))
}
