package consumer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"budget/internal/config"
	"budget/internal/input"
	"budget/internal/model"
	"budget/internal/render"
	"budget/internal/service"
)

const menu = `
==== Simple Budget Planner ====
1) Add transaction
2) List transactions
3) View by id
4) Update transaction
5) Delete transaction
6) Monthly summary
7) Category breakdown
8) Show latest
9) Reset (delete all)
0) Exit
Choose: `

// Menu consumes one line of user input at a time and drives the recorder and
// reporter services, one action per menu choice.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	parser   *input.Parser
	recorder *service.Recorder
	reporter *service.Reporter
	renderer *render.Renderer
	cfg      config.Budget
}

func NewMenu(in io.Reader, out io.Writer, parser *input.Parser, recorder *service.Recorder,
	reporter *service.Reporter, renderer *render.Renderer, cfg config.Budget) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		parser:   parser,
		recorder: recorder,
		reporter: reporter,
		renderer: renderer,
		cfg:      cfg,
	}
}

func (m *Menu) Consume(ctx context.Context) {
	logrus.Info("menu consumer started")
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("menu consumer stopped: %v", ctx.Err())
			return
		default:
		}

		choice, ok := m.prompt(menu)
		if !ok {
			logrus.Info("menu consumer stopped: input closed")
			return
		}

		switch choice {
		case "1":
			m.add(ctx)
		case "2":
			m.list(ctx)
		case "3":
			m.view(ctx)
		case "4":
			m.update(ctx)
		case "5":
			m.remove(ctx)
		case "6":
			m.summary(ctx)
		case "7":
			m.categories(ctx)
		case "8":
			m.latest(ctx)
		case "9":
			m.reset(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye — data saved.")
			return
		default:
			fmt.Fprintln(m.out, "Please choose a number from 0 to 9.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) add(ctx context.Context) {
	fmt.Fprintln(m.out, "\nAdd a new transaction — type 'income' or 'expense'.")

	kind := model.Expense
	for {
		s, ok := m.prompt("Type (income/expense) [expense]: ")
		if !ok {
			return
		}
		if s == "" {
			break
		}
		parsed, err := m.parser.Kind(s)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter income or expense.")
			continue
		}
		kind = parsed
		break
	}

	var amount model.Amount
	for {
		s, ok := m.prompt("Amount: ")
		if !ok {
			return
		}
		parsed, err := m.parser.Amount(s)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number like 1200 or 45.50.")
			continue
		}
		amount = parsed
		break
	}
	if !amount.IsPositive() {
		fmt.Fprintln(m.out, "Amount must be greater than zero.")
		return
	}

	category, ok := m.prompt(fmt.Sprintf("Category (e.g. Food, Salary) [%s]: ", m.cfg.DefaultCategory))
	if !ok {
		return
	}
	if category == "" {
		category = m.cfg.DefaultCategory
	}
	category, err := m.parser.Category(category)
	if err != nil {
		fmt.Fprintln(m.out, "That category is not usable.")
		return
	}

	var date string
	for {
		s, ok := m.prompt("Date (YYYY-MM-DD) [today]: ")
		if !ok {
			return
		}
		date, err = m.parser.Date(s)
		if err != nil {
			fmt.Fprintln(m.out, "That's not a valid date. Please use YYYY-MM-DD.")
			continue
		}
		break
	}

	var notes *string
	if s, ok := m.prompt("Notes (optional): "); ok && s != "" {
		notes = &s
	}

	tx, err := m.recorder.Add(ctx, kind, amount, category, date, notes)
	if err != nil {
		logrus.Errorf("menu consumer couldn't add transaction: %v", err)
		fmt.Fprintf(m.out, "Could not save the transaction: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Saved — transaction id: %d\n", tx.ID)
}

func (m *Menu) list(ctx context.Context) {
	txs := m.reporter.List(ctx)
	if len(txs) == 0 {
		fmt.Fprintln(m.out, "\nNo transactions yet — add your first one!")
		return
	}
	fmt.Fprintln(m.out, "\nRecent transactions:")
	for _, tx := range txs {
		fmt.Fprintln(m.out, m.renderer.Line(tx))
	}
}

func (m *Menu) view(ctx context.Context) {
	id, ok := m.askID("Enter transaction id to view: ")
	if !ok {
		return
	}
	tx, err := m.recorder.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(m.out, "Transaction not found.")
		return
	}
	fmt.Fprintln(m.out, "\nTransaction details:")
	fmt.Fprint(m.out, m.renderer.Details(*tx))
}

func (m *Menu) update(ctx context.Context) {
	id, ok := m.askID("Enter transaction id to update: ")
	if !ok {
		return
	}
	current, err := m.recorder.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(m.out, "Transaction not found.")
		return
	}

	fmt.Fprintln(m.out, "Leave blank to keep the current value.")
	change := model.Update{}

	fmt.Fprintf(m.out, "Current type: %s\n", current.Kind)
	if s, ok := m.prompt("New type (income/expense): "); ok && s != "" {
		kind, err := m.parser.Kind(s)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid type. Keeping current.")
		} else {
			change.Kind = &kind
		}
	}

	fmt.Fprintf(m.out, "Current amount: %s\n", m.renderer.Amount(current.Amount))
	if s, ok := m.prompt("New amount: "); ok && s != "" {
		amount, err := m.parser.Amount(s)
		switch {
		case err != nil:
			fmt.Fprintln(m.out, "Invalid number. Keeping old amount.")
		case !amount.IsPositive():
			fmt.Fprintln(m.out, "Amount must be > 0. Keeping old amount.")
		default:
			change.Amount = &amount
		}
	}

	if s, ok := m.prompt(fmt.Sprintf("New category [%s]: ", current.Category)); ok && s != "" {
		category, err := m.parser.Category(s)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid category. Keeping current.")
		} else {
			change.Category = &category
		}
	}

	if s, ok := m.prompt(fmt.Sprintf("New date [%s] (YYYY-MM-DD): ", current.Date)); ok && s != "" {
		date, err := m.parser.Date(s)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid date format. Keeping old date.")
		} else {
			change.Date = &date
		}
	}

	currentNotes := ""
	if current.Notes != nil {
		currentNotes = *current.Notes
	}
	if s, ok := m.prompt(fmt.Sprintf("New notes [%s]: ", currentNotes)); ok && s != "" {
		change.Notes = &s
	}

	if _, err = m.recorder.Change(ctx, id, change); err != nil {
		logrus.Errorf("menu consumer couldn't update transaction %d: %v", id, err)
		fmt.Fprintf(m.out, "Could not update the transaction: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Transaction updated.")
}

func (m *Menu) remove(ctx context.Context) {
	id, ok := m.askID("Enter transaction id to delete: ")
	if !ok {
		return
	}
	err := m.recorder.Remove(ctx, id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		fmt.Fprintln(m.out, "No transaction found with that id.")
	case err != nil:
		logrus.Errorf("menu consumer couldn't delete transaction %d: %v", id, err)
		fmt.Fprintf(m.out, "Could not delete the transaction: %v\n", err)
	default:
		fmt.Fprintln(m.out, "Deleted.")
	}
}

func (m *Menu) summary(ctx context.Context) {
	summary := m.reporter.MonthlySummary(ctx)
	if len(summary) == 0 {
		fmt.Fprintln(m.out, "\nNo transactions to summarize.")
		return
	}
	fmt.Fprintln(m.out, "\nMonthly summary (YYYY-MM -> Net):")
	for _, row := range summary {
		fmt.Fprintln(m.out, m.renderer.MonthNet(row))
	}
}

func (m *Menu) categories(ctx context.Context) {
	breakdown := m.reporter.CategoryBreakdown(ctx)
	if len(breakdown) == 0 {
		fmt.Fprintln(m.out, "\nNo transactions.")
		return
	}
	fmt.Fprintln(m.out, "\nCategory totals:")
	for _, row := range breakdown {
		fmt.Fprintln(m.out, m.renderer.CategoryTotal(row))
	}
}

func (m *Menu) latest(ctx context.Context) {
	txs := m.reporter.Latest(ctx, m.cfg.LatestLimit)
	if len(txs) == 0 {
		fmt.Fprintln(m.out, "\nNo transactions yet — add your first one!")
		return
	}
	fmt.Fprintf(m.out, "\nLatest %d transactions:\n", len(txs))
	for _, tx := range txs {
		fmt.Fprintln(m.out, m.renderer.Line(tx))
	}
}

func (m *Menu) reset(ctx context.Context) {
	confirm, ok := m.prompt("Type YES to permanently delete all data: ")
	if !ok {
		return
	}
	err := m.recorder.Reset(ctx, confirm)
	switch {
	case errors.Is(err, model.ErrNotConfirmed):
		fmt.Fprintln(m.out, "Cancelled.")
	case err != nil:
		logrus.Errorf("menu consumer couldn't reset the ledger: %v", err)
		fmt.Fprintf(m.out, "Could not reset: %v\n", err)
	default:
		fmt.Fprintln(m.out, "All data removed.")
	}
}

func (m *Menu) askID(label string) (int64, bool) {
	s, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := m.parser.ID(s)
	if err != nil {
		fmt.Fprintln(m.out, "ID must be a positive integer.")
		return 0, false
	}
	return id, true
}
