package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var latestCmd = &cobra.Command{
	Use:          "latest [n]",
	Short:        "Show the n most recently dated transactions",
	Args:         cobra.MaximumNArgs(1),
	RunE:         latestCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(latestCmd)
}

func latestCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	n := a.cfg.Budget.LatestLimit
	if len(args) == 1 {
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("n must be a positive integer, got %q", args[0])
		}
	}

	txs := a.reporter.Latest(cmd.Context(), n)
	if len(txs) == 0 {
		fmt.Println("No transactions yet — add your first one!")
		return nil
	}
	for _, tx := range txs {
		fmt.Println(a.renderer.Line(tx))
	}
	return nil
}
