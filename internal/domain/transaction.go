package domain

import (
	"github.com/shopspring/decimal"
)

// Transaction kinds accepted from clients.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction is one raw personal-finance record supplied by the client.
// Nothing is persisted server-side; every request carries the full list.
// Amount is a decimal so that both JSON numbers and numeric strings decode
// exactly; anything non-numeric fails the whole request.
type Transaction struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"` // ISO-8601, passed through untouched
	Kind     string          `json:"type"` // "income" or "expense"
}

// ConversationTurn is one prior message in the advisory chat. The caller
// resupplies the full history on every request; the server stores none of it.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
