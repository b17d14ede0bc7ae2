// Package render formats transactions and report rows for console output.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"budget/internal/model"
	"budget/internal/service"
)

type Renderer struct {
	printer *message.Printer
}

func New() *Renderer {
	return &Renderer{
		printer: message.NewPrinter(language.English),
	}
}

// Amount renders a signed amount with two decimals and digit grouping,
// e.g. +1,500.00 or -250.00.
func (r *Renderer) Amount(a model.Amount) string {
	f, _ := a.Float64()
	return r.printer.Sprintf("%+.2f", f)
}

func (r *Renderer) Line(tx model.Transaction) string {
	notes := ""
	if tx.Notes != nil {
		notes = *tx.Notes
	}
	return fmt.Sprintf("ID:%d | %s | %s | %s | %s | %s",
		tx.ID, tx.Date, tx.Category, tx.Kind, r.Amount(tx.Amount), notes)
}

func (r *Renderer) Details(tx model.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %d\n", tx.ID)
	fmt.Fprintf(&b, "type: %s\n", tx.Kind)
	fmt.Fprintf(&b, "amount: %s\n", r.Amount(tx.Amount))
	fmt.Fprintf(&b, "category: %s\n", tx.Category)
	fmt.Fprintf(&b, "date: %s\n", tx.Date)
	if tx.Notes != nil {
		fmt.Fprintf(&b, "notes: %s\n", *tx.Notes)
	} else {
		b.WriteString("notes:\n")
	}
	fmt.Fprintf(&b, "created_at: %s\n", tx.CreatedAt.Format("2006-01-02 15:04:05"))
	if tx.UpdatedAt != nil {
		fmt.Fprintf(&b, "updated_at: %s\n", tx.UpdatedAt.Format("2006-01-02 15:04:05"))
	} else {
		b.WriteString("updated_at:\n")
	}
	return b.String()
}

func (r *Renderer) MonthNet(row service.MonthNet) string {
	return fmt.Sprintf("%s -> %s", row.Month, r.Amount(row.Net))
}

func (r *Renderer) CategoryTotal(row service.CategoryTotal) string {
	return fmt.Sprintf("%s: %s", row.Category, r.Amount(row.Total))
}
