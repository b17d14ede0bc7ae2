package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List all transactions, most recent date first",
	RunE:         listCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func listCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	txs := a.reporter.List(cmd.Context())
	if len(txs) == 0 {
		fmt.Println("No transactions yet — add your first one!")
		return nil
	}
	for _, tx := range txs {
		fmt.Println(a.renderer.Line(tx))
	}
	return nil
}
