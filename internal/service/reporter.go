package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"budget/internal/model"
	"budget/internal/repository"
)

// MonthNet is the signed net for one YYYY-MM bucket.
type MonthNet struct {
	Month string
	Net   model.Amount
}

// CategoryTotal is the signed net for one category.
type CategoryTotal struct {
	Category string
	Total    model.Amount
}

// Reporter builds read-only aggregates over the store's current transactions.
type Reporter struct {
	repo repository.Lister
}

func NewReporter(repo repository.Lister) *Reporter {
	return &Reporter{
		repo: repo,
	}
}

// List returns every transaction, date descending.
func (r *Reporter) List(ctx context.Context) []model.Transaction {
	return r.repo.List(ctx)
}

// MonthlySummary groups transactions by the YYYY-MM prefix of their date and
// nets the signed amounts per group, months ascending.
func (r *Reporter) MonthlySummary(ctx context.Context) []MonthNet {
	byMonth := make(map[string]decimal.Decimal)
	for _, tx := range r.repo.List(ctx) {
		month := tx.Month()
		byMonth[month] = byMonth[month].Add(tx.Amount.Decimal)
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	summary := make([]MonthNet, 0, len(months))
	for _, month := range months {
		summary = append(summary, MonthNet{
			Month: month,
			Net:   model.NewAmount(byMonth[month]),
		})
	}
	return summary
}

// CategoryBreakdown nets the signed amounts per category, largest absolute
// total first. Categories with equal totals come out in name order, so the
// result is always deterministic.
func (r *Reporter) CategoryBreakdown(ctx context.Context) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)
	for _, tx := range r.repo.List(ctx) {
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount.Decimal)
	}

	breakdown := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		breakdown = append(breakdown, CategoryTotal{
			Category: category,
			Total:    model.NewAmount(total),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		left, right := breakdown[i].Total.Abs(), breakdown[j].Total.Abs()
		if !left.Equal(right) {
			return left.GreaterThan(right)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// Latest returns the n most recently dated transactions, in the same order
// List uses.
func (r *Reporter) Latest(ctx context.Context, n int) []model.Transaction {
	txs := r.repo.List(ctx)
	if n >= 0 && n < len(txs) {
		txs = txs[:n]
	}
	return txs
}
