package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"budget/internal/model"
)

var updateCmd = &cobra.Command{
	Use:          "update <id>",
	Short:        "Change fields of a transaction; omitted flags keep current values",
	Args:         cobra.ExactArgs(1),
	RunE:         updateCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringP("type", "t", "", "New type: income or expense.")
	updateCmd.Flags().StringP("amount", "a", "", "New amount magnitude.")
	updateCmd.Flags().StringP("category", "c", "", "New category.")
	updateCmd.Flags().StringP("date", "d", "", "New date in YYYY-MM-DD form.")
	updateCmd.Flags().StringP("notes", "n", "", "New notes.")
}

func updateCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	id, err := a.parser.ID(args[0])
	if err != nil {
		return err
	}

	change := model.Update{}

	if cmd.Flags().Changed("type") {
		s, _ := cmd.Flags().GetString("type")
		kind, err := a.parser.Kind(s)
		if err != nil {
			return err
		}
		change.Kind = &kind
	}
	if cmd.Flags().Changed("amount") {
		s, _ := cmd.Flags().GetString("amount")
		amount, err := a.parser.Amount(s)
		if err != nil {
			return err
		}
		change.Amount = &amount
	}
	if cmd.Flags().Changed("category") {
		s, _ := cmd.Flags().GetString("category")
		category, err := a.parser.Category(s)
		if err != nil {
			return err
		}
		change.Category = &category
	}
	if cmd.Flags().Changed("date") {
		s, _ := cmd.Flags().GetString("date")
		date, err := a.parser.Date(s)
		if err != nil {
			return err
		}
		change.Date = &date
	}
	if cmd.Flags().Changed("notes") {
		s, _ := cmd.Flags().GetString("notes")
		change.Notes = &s
	}

	if _, err = a.recorder.Change(cmd.Context(), id, change); err != nil {
		return err
	}
	fmt.Println("Transaction updated.")
	return nil
}
