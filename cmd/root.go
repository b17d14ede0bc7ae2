package cmd

import "github.com/spf13/cobra"

var RootCmd = &cobra.Command{
	Use:   "budget",
	Short: "Personal budget planner over a JSON ledger",
}

func init() {
	RootCmd.PersistentFlags().StringP("file", "f", "", "Ledger file to use.")
}

func Run(args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}
