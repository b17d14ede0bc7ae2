package consumer

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"budget/internal/config"
	"budget/internal/input"
	"budget/internal/render"
	"budget/internal/repository"
	"budget/internal/service"
)

func runMenu(t *testing.T, script string) string {
	t.Helper()
	store, err := repository.Open(filepath.Join(t.TempDir(), "budget_data.json"))
	require.NoError(t, err)

	cfg := config.Budget{DefaultCategory: "Misc", LatestLimit: 5}
	out := &bytes.Buffer{}
	menu := NewMenu(strings.NewReader(script), out,
		input.NewParser(validator.New()),
		service.NewRecorder(store),
		service.NewReporter(store),
		render.New(),
		cfg)

	menu.Consume(context.Background())
	return out.String()
}

func TestMenu_AddAndList(t *testing.T) {
	script := strings.Join([]string{
		"1",          // add
		"income",     // type
		"1500",       // amount
		"Salary",     // category
		"2025-11-01", // date
		"",           // notes
		"2",          // list
		"0",          // exit
	}, "\n") + "\n"

	out := runMenu(t, script)
	require.Contains(t, out, "Saved — transaction id: 1")
	require.Contains(t, out, "Recent transactions:")
	require.Contains(t, out, "ID:1 | 2025-11-01 | Salary | income | +1,500.00 |")
	require.Contains(t, out, "Goodbye — data saved.")
}

func TestMenu_DefaultsOnBlankInput(t *testing.T) {
	script := strings.Join([]string{
		"1",     // add
		"",      // type defaults to expense
		"45.50", // amount
		"",      // category defaults to Misc
		"",      // date defaults to today
		"",      // notes
		"2",     // list
		"0",     // exit
	}, "\n") + "\n"

	out := runMenu(t, script)
	require.Contains(t, out, "Saved — transaction id: 1")
	require.Contains(t, out, "| Misc | expense | -45.50 |")
}

func TestMenu_InvalidAmountReprompts(t *testing.T) {
	script := strings.Join([]string{
		"1",          // add
		"expense",    // type
		"lots",       // bad amount
		"12",         // retried amount
		"Food",       // category
		"2025-11-24", // date
		"",           // notes
		"0",          // exit
	}, "\n") + "\n"

	out := runMenu(t, script)
	require.Contains(t, out, "Please enter a number like 1200 or 45.50.")
	require.Contains(t, out, "Saved — transaction id: 1")
}

func TestMenu_UnknownChoice(t *testing.T) {
	out := runMenu(t, "x\n0\n")
	require.Contains(t, out, "Please choose a number from 0 to 9.")
}

func TestMenu_ResetCancelled(t *testing.T) {
	script := strings.Join([]string{
		"1", "income", "100", "Salary", "2025-11-01", "", // add
		"9", "no", // reset without the token
		"2", // list still has the transaction
		"0",
	}, "\n") + "\n"

	out := runMenu(t, script)
	require.Contains(t, out, "Cancelled.")
	require.Contains(t, out, "ID:1 |")
}

func TestMenu_ViewUnknownID(t *testing.T) {
	out := runMenu(t, "3\n42\n0\n")
	require.Contains(t, out, "Transaction not found.")
}

func TestMenu_EOFStopsConsuming(t *testing.T) {
	out := runMenu(t, "")
	require.Contains(t, out, "==== Simple Budget Planner ====")
}

func TestMenu_CancelledContextStopsConsuming(t *testing.T) {
	store, err := repository.Open(filepath.Join(t.TempDir(), "budget_data.json"))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	menu := NewMenu(strings.NewReader("2\n2\n2\n"), out,
		input.NewParser(validator.New()),
		service.NewRecorder(store),
		service.NewReporter(store),
		render.New(),
		config.Budget{DefaultCategory: "Misc", LatestLimit: 5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	menu.Consume(ctx)
	require.NotContains(t, out.String(), "==== Simple Budget Planner ====")
}
