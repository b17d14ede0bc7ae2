package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:          "get <id>",
	Short:        "Show one transaction by id",
	Args:         cobra.ExactArgs(1),
	RunE:         getCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(getCmd)
}

func getCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	id, err := a.parser.ID(args[0])
	if err != nil {
		return err
	}

	tx, err := a.recorder.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Print(a.renderer.Details(*tx))
	return nil
}
