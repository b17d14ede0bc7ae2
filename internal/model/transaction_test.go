package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalsAsBareNumber(t *testing.T) {
	d, err := decimal.NewFromString("-45.50")
	require.NoError(t, err)

	out, err := json.Marshal(NewAmount(d))
	require.NoError(t, err)
	require.Equal(t, "-45.50", string(out))

	var back Amount
	require.NoError(t, json.Unmarshal(out, &back))
	require.Equal(t, "-45.50", back.String())
}

func TestAmount_StringKeepsScale(t *testing.T) {
	testTable := []struct {
		name string
		in   string
		out  string
	}{
		{name: "two places", in: "45.50", out: "45.50"},
		{name: "trailing zero kept", in: "1.20", out: "1.20"},
		{name: "integer", in: "1500", out: "1500"},
		{name: "zero", in: "0", out: "0"},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			d, err := decimal.NewFromString(testCase.in)
			require.NoError(t, err)
			require.Equal(t, testCase.out, NewAmount(d).String())
		})
	}
}

func TestAmount_SumKeepsScale(t *testing.T) {
	a, err := decimal.NewFromString("1.25")
	require.NoError(t, err)
	b, err := decimal.NewFromString("1.25")
	require.NoError(t, err)

	require.Equal(t, "2.50", NewAmount(a.Add(b)).String())
}

func TestAmount_Signed(t *testing.T) {
	d, err := decimal.NewFromString("120")
	require.NoError(t, err)
	a := NewAmount(d)

	require.Equal(t, "-120", a.Signed(Expense).String())
	require.Equal(t, "120", a.Signed(Income).String())
	require.Equal(t, "120", a.Signed(Expense).Signed(Income).String())
}

func TestTransaction_NullFieldsSurviveJSON(t *testing.T) {
	raw := `{"id": 1, "type": "expense", "amount": -5, "category": "Food",
		"date": "2025-11-24", "notes": null,
		"created_at": "2025-11-24T10:00:00Z", "updated_at": null}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &tx))
	require.Nil(t, tx.Notes)
	require.Nil(t, tx.UpdatedAt)

	out, err := json.Marshal(&tx)
	require.NoError(t, err)
	require.Contains(t, string(out), `"notes":null`)
	require.Contains(t, string(out), `"updated_at":null`)
}

func TestLedger_Validate(t *testing.T) {
	tx := func(id int64) *Transaction {
		return &Transaction{ID: id, Kind: Income, Category: "Misc", Date: "2025-01-01"}
	}

	testTable := []struct {
		name   string
		ledger Ledger
		valid  bool
	}{
		{
			name:   "empty",
			ledger: Ledger{NextID: 1},
			valid:  true,
		},
		{
			name:   "ids below next_id",
			ledger: Ledger{NextID: 3, Transactions: []*Transaction{tx(1), tx(2)}},
			valid:  true,
		},
		{
			name:   "zero next_id",
			ledger: Ledger{NextID: 0},
			valid:  false,
		},
		{
			name:   "id at next_id",
			ledger: Ledger{NextID: 2, Transactions: []*Transaction{tx(2)}},
			valid:  false,
		},
		{
			name:   "duplicate id",
			ledger: Ledger{NextID: 5, Transactions: []*Transaction{tx(1), tx(1)}},
			valid:  false,
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			err := testCase.ledger.Validate()
			if testCase.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrCorruptLedger)
			}
		})
	}
}

func TestTransaction_Month(t *testing.T) {
	tx := Transaction{Date: "2025-11-24"}
	require.Equal(t, "2025-11", tx.Month())
}
