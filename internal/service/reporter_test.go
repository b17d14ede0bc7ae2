package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"budget/internal/model"
	"budget/internal/repository"
)

type seedTx struct {
	kind     model.Kind
	amount   string
	category string
	date     string
}

func seed(t *testing.T, txs []seedTx) (*Recorder, *Reporter) {
	t.Helper()
	store, err := repository.Open(filepath.Join(t.TempDir(), "budget_data.json"))
	require.NoError(t, err)

	recorder := NewRecorder(store)
	for _, tx := range txs {
		d, err := decimal.NewFromString(tx.amount)
		require.NoError(t, err)
		_, err = recorder.Add(context.Background(), tx.kind, model.NewAmount(d), tx.category, tx.date, nil)
		require.NoError(t, err)
	}
	return recorder, NewReporter(store)
}

func TestReporter_MonthlySummary(t *testing.T) {
	_, reporter := seed(t, []seedTx{
		{model.Income, "1500", "Salary", "2025-11-01"},
		{model.Expense, "250", "Food", "2025-11-24"},
		{model.Expense, "40", "Transport", "2025-10-05"},
	})

	summary := reporter.MonthlySummary(context.Background())
	require.Len(t, summary, 2)
	require.Equal(t, "2025-10", summary[0].Month)
	require.Equal(t, "-40", summary[0].Net.String())
	require.Equal(t, "2025-11", summary[1].Month)
	require.Equal(t, "1250", summary[1].Net.String())
}

func TestReporter_MonthlySummaryEmpty(t *testing.T) {
	_, reporter := seed(t, nil)
	require.Empty(t, reporter.MonthlySummary(context.Background()))
}

func TestReporter_CategoryBreakdownOrder(t *testing.T) {
	_, reporter := seed(t, []seedTx{
		{model.Expense, "300", "Rent", "2025-11-01"},
		{model.Income, "2000", "Salary", "2025-11-01"},
		{model.Expense, "25", "Food", "2025-11-02"},
		{model.Expense, "35", "Food", "2025-11-09"},
		// ties Food's -60 in magnitude, must sort after it by name
		{model.Income, "60", "Gifts", "2025-11-10"},
	})

	breakdown := reporter.CategoryBreakdown(context.Background())
	require.Len(t, breakdown, 4)

	categories := make([]string, len(breakdown))
	for i, row := range breakdown {
		categories[i] = row.Category
	}
	require.Equal(t, []string{"Salary", "Rent", "Food", "Gifts"}, categories)
	require.Equal(t, "-60", breakdown[2].Total.String())
	require.Equal(t, "60", breakdown[3].Total.String())
}

func TestReporter_Latest(t *testing.T) {
	_, reporter := seed(t, []seedTx{
		{model.Expense, "10", "Food", "2025-01-01"},
		{model.Expense, "10", "Food", "2025-01-03"},
		{model.Expense, "10", "Food", "2025-01-02"},
	})

	latest := reporter.Latest(context.Background(), 2)
	require.Len(t, latest, 2)
	require.Equal(t, "2025-01-03", latest[0].Date)
	require.Equal(t, "2025-01-02", latest[1].Date)

	// asking for more than exists returns everything
	require.Len(t, reporter.Latest(context.Background(), 10), 3)
}
