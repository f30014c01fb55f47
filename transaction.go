package finbook

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxType is the kind of a transaction, income or expense.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a transaction type, case-insensitively.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return "", invalidf("type", "%q (must be income or expense)", s)
	}
}

// Transaction is one row of the ledger table.
//
// ID is not guaranteed unique across old ledgers (legacy ids were
// derived from second-granularity timestamps), so every lookup keys on
// (ID, ProfileID). New ids are UUIDs.
type Transaction struct {
	ID            string
	User          string
	ProfileID     string
	Type          TxType
	Amount        decimal.Decimal
	Category      string
	Date          Date
	Description   string
	PaymentMethod string
}

// NewTransactionID returns a fresh ledger row id.
func NewTransactionID() string { return uuid.NewString() }

// Validate checks every field constraint the ledger enforces on
// append. It returns the first violation found.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return invalidf("transaction_id", "must not be empty")
	}
	if strings.TrimSpace(t.User) == "" {
		return invalidf("user", "must not be empty")
	}
	if strings.TrimSpace(t.ProfileID) == "" {
		return invalidf("profile_id", "must not be empty")
	}
	if t.Type != Income && t.Type != Expense {
		return invalidf("type", "%q (must be income or expense)", string(t.Type))
	}
	if !t.Amount.IsPositive() {
		return invalidf("amount", "must be greater than 0")
	}
	if strings.TrimSpace(t.Category) == "" {
		return invalidf("category", "must not be empty")
	}
	if t.Date.IsZero() {
		return invalidf("date", "must be a calendar date")
	}
	if strings.TrimSpace(t.PaymentMethod) == "" {
		return invalidf("payment_method", "must not be empty")
	}
	return nil
}

// Predicate selects transactions during a scan.
type Predicate func(Transaction) bool

// AcceptAll matches every transaction.
func AcceptAll(Transaction) bool { return true }

// ByProfile returns a predicate matching a profile's transactions.
func ByProfile(profileID string) Predicate {
	return func(t Transaction) bool { return t.ProfileID == profileID }
}

// ByUser returns a predicate matching a user's transactions.
func ByUser(name string) Predicate {
	return func(t Transaction) bool { return t.User == name }
}

// ByType returns a predicate matching a transaction type.
func ByType(tt TxType) Predicate {
	return func(t Transaction) bool { return t.Type == tt }
}

// ByKeyword returns a predicate matching a case-insensitive keyword in
// the category or description.
func ByKeyword(keyword string) Predicate {
	k := strings.ToLower(keyword)
	return func(t Transaction) bool {
		return strings.Contains(strings.ToLower(t.Category), k) ||
			strings.Contains(strings.ToLower(t.Description), k)
	}
}

// And composes predicates; the result matches only when all do.
func And(preds ...Predicate) Predicate {
	return func(t Transaction) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}
