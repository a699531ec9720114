package advisor

import (
	"strings"

	"github.com/smartlife/ai-backend/internal/domain"
)

// advisorSystemInstruction is the persona used for the advisory chat.
const advisorSystemInstruction = `You are "SmartLife Finance Advisor", a smart, friendly and knowledgeable personal-finance expert.
Your job is to answer finance questions and give advice on saving, investing and budgeting.

Answering style:
- Short and to the point; never long rambling paragraphs.
- Context data, when present, is JSON containing 'summary' and 'recent_transactions'.
- 'recent_transactions' is a compact list: d=date, c=category, a=amount, t=type, n=note.
- When the user asks for details (e.g. "list my food spending"), USE 'recent_transactions' to list them.
- Formatting:
  * Use Markdown tables to list transactions or compare figures (columns: Date | Amount | Note).
  * Use bullet points for advice, observations and key takeaways.
- Always encourage the user.`

// BuildInsightPrompt renders the spending-analysis prompt. It is a pure
// function: the same summary and goal always produce the same text.
func BuildInsightPrompt(summary domain.SpendingSummary, userGoal string) string {
	var b strings.Builder

	b.WriteString("I am a personal finance assistant. The user has spent a total of ")
	b.WriteString(summary.TotalSpent.String())
	b.WriteString(".\n")
	b.WriteString("The most expensive category is '" + summary.TopCategory + "' at " + summary.TopAmount.String() + ".\n\n")

	b.WriteString("Spending by category:\n")
	for _, ct := range summary.CategoryTotals {
		b.WriteString("- " + ct.Category + ": " + ct.Total.String() + "\n")
	}

	if userGoal != "" {
		b.WriteString("\nThe user's stated goal: " + userGoal + "\n")
	}

	b.WriteString("\nTask:\n")
	b.WriteString("- Give 1 short observation (under 50 words) about these spending habits.\n")
	b.WriteString("- Suggest exactly 3 concrete actions to save more effectively.\n\n")

	b.WriteString("Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("Format: {\"insight\": \"...\", \"actions\": [\"...\", \"...\", \"...\"]}\n")
	b.WriteString("Return ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Do NOT use ```json or any Markdown.\n")

	return b.String()
}

// BuildSchedulePrompt renders the calendar-extraction prompt. dayOfWeek is
// computed by the model relative to currentDate, which is why the caller's
// clock is embedded verbatim.
func BuildSchedulePrompt(command, currentDate string) string {
	var b strings.Builder

	b.WriteString("Current Date: " + currentDate + "\n")
	b.WriteString("User Command: \"" + command + "\"\n\n")

	b.WriteString("Task: Extract the schedule event details from the command.\n")
	b.WriteString("1. If it is a valid task/event, return a JSON object with:\n")
	b.WriteString("   - \"title\": string, short summary\n")
	b.WriteString("   - \"start_time\": string, HH:MM 24h format\n")
	b.WriteString("   - \"end_time\": string, HH:MM 24h format (guess the duration if not specified, default 1 hour after start)\n")
	b.WriteString("   - \"day_of_week\": int, 0=Sunday, 1=Monday, ..., 6=Saturday, calculated from Current Date\n")
	b.WriteString("   - \"location\": string or null\n")
	b.WriteString("2. If the command names a specific date (e.g. \"next Friday\"), calculate the correct \"day_of_week\".\n")
	b.WriteString("3. If no time is specified, default \"start_time\" to \"08:00\".\n")
	b.WriteString("4. If it is NOT a scheduling command, return {\"error\": \"Not a schedule command\"}. Never return a partially filled event.\n\n")

	b.WriteString("Return ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Do NOT use ```json or any Markdown.\n")

	return b.String()
}
