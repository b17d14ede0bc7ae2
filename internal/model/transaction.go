package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Kind says whether a transaction adds money or takes it away
type Kind string

var (
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidKind     = errors.New("type must be income or expense")
	ErrInvalidDate     = errors.New("date must have the form YYYY-MM-DD")
	ErrInvalidAmount   = errors.New("amount must be a number")
	ErrInvalidCategory = errors.New("category must not be empty")
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrCorruptLedger   = errors.New("ledger document is malformed")
	ErrNotConfirmed    = errors.New("reset was not confirmed")
)

// Amount is a decimal money value. It marshals as a bare JSON number so the
// ledger file keeps plain numeric amounts.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// String renders the amount at the decimal's own scale, so a parsed 45.50
// stays 45.50 instead of being trimmed to 45.5.
func (a Amount) String() string {
	places := -a.Exponent()
	if places < 0 {
		places = 0
	}
	return a.StringFixed(places)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Signed re-signs the amount for kind: expenses carry a negative magnitude,
// incomes a positive one.
func (a Amount) Signed(kind Kind) Amount {
	if kind == Expense {
		return Amount{Decimal: a.Abs().Neg()}
	}
	return Amount{Decimal: a.Abs()}
}

// Transaction is one record of income or expenses
type Transaction struct {
	ID        int64      `json:"id"`
	Kind      Kind       `json:"type"`
	Amount    Amount     `json:"amount"`
	Category  string     `json:"category"`
	Date      string     `json:"date"` // YYYY-MM-DD
	Notes     *string    `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// Month returns the YYYY-MM prefix of the transaction date.
func (t *Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Update describes a partial change to a transaction. Nil fields keep the
// current value, so a caller never has to resend what it does not change.
type Update struct {
	Kind     *Kind
	Amount   *Amount
	Category *string
	Date     *string
	Notes    *string
}
