package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:          "delete <id>",
	Short:        "Delete a transaction by id",
	Args:         cobra.ExactArgs(1),
	RunE:         deleteCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}

func deleteCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	id, err := a.parser.ID(args[0])
	if err != nil {
		return err
	}

	if err = a.recorder.Remove(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
