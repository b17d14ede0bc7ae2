package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:          "add",
	Short:        "Record a new income or expense transaction",
	RunE:         addCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("type", "t", "expense", "Transaction type: income or expense.")
	addCmd.Flags().StringP("amount", "a", "", "Amount, e.g. 1200 or 45.50.")
	addCmd.Flags().StringP("category", "c", "", "Category, e.g. Food or Salary.")
	addCmd.Flags().StringP("date", "d", "", "Date in YYYY-MM-DD form, today when omitted.")
	addCmd.Flags().StringP("notes", "n", "", "Optional notes.")
	addCmd.MarkFlagRequired("amount")
}

func addCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	kindStr, _ := cmd.Flags().GetString("type")
	kind, err := a.parser.Kind(kindStr)
	if err != nil {
		return err
	}

	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := a.parser.Amount(amountStr)
	if err != nil {
		return err
	}

	categoryStr, _ := cmd.Flags().GetString("category")
	if categoryStr == "" {
		categoryStr = a.cfg.Budget.DefaultCategory
	}
	category, err := a.parser.Category(categoryStr)
	if err != nil {
		return err
	}

	dateStr, _ := cmd.Flags().GetString("date")
	date, err := a.parser.Date(dateStr)
	if err != nil {
		return err
	}

	var notes *string
	if s, _ := cmd.Flags().GetString("notes"); s != "" {
		notes = &s
	}

	tx, err := a.recorder.Add(cmd.Context(), kind, amount, category, date, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Saved — transaction id: %d\n", tx.ID)
	return nil
}
