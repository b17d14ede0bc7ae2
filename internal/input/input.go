// Package input turns untrusted strings from prompts and flags into
// validated typed values before they reach the store.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"budget/internal/model"
)

const dateLayout = "2006-01-02"

type Parser struct {
	validate *validator.Validate
}

func NewParser(validate *validator.Validate) *Parser {
	return &Parser{
		validate: validate,
	}
}

// Date accepts ISO YYYY-MM-DD and returns the canonical form. Empty input
// means today.
func (p *Parser) Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format(dateLayout), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidDate, s)
	}
	return t.Format(dateLayout), nil
}

// Amount accepts a signed or unsigned decimal numeral. Zero is permitted
// here; whether it is acceptable is the recorder's call.
func (p *Parser) Amount(s string) (model.Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return model.Amount{}, fmt.Errorf("%w: %q", model.ErrInvalidAmount, s)
	}
	return model.NewAmount(d), nil
}

// Kind accepts income or expense, case-insensitively.
func (p *Parser) Kind(s string) (model.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(model.Income):
		return model.Income, nil
	case string(model.Expense):
		return model.Expense, nil
	}
	return "", fmt.Errorf("%w: %q", model.ErrInvalidKind, s)
}

func (p *Parser) Category(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := p.validate.Var(s, "required,max=64"); err != nil {
		return "", fmt.Errorf("%w: %q", model.ErrInvalidCategory, s)
	}
	return s, nil
}

func (p *Parser) ID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidID, s)
	}
	return id, nil
}
