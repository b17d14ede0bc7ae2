package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"budget/internal/repository"
)

var resetCmd = &cobra.Command{
	Use:          "reset",
	Short:        "Delete all transactions and restart ids from 1",
	RunE:         resetCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(resetCmd)
	resetCmd.Flags().String("confirm", "", fmt.Sprintf("Must be %q for the reset to run.", repository.ResetToken))
}

func resetCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	confirm, _ := cmd.Flags().GetString("confirm")
	if err = a.recorder.Reset(cmd.Context(), confirm); err != nil {
		return err
	}
	fmt.Println("All data removed.")
	return nil
}
