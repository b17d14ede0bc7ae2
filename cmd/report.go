package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:          "summary",
	Short:        "Net amount per month (YYYY-MM), months ascending",
	RunE:         summaryCmdF,
	SilenceUsage: true,
}

var categoriesCmd = &cobra.Command{
	Use:          "categories",
	Short:        "Net total per category, largest absolute total first",
	RunE:         categoriesCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(summaryCmd)
	RootCmd.AddCommand(categoriesCmd)
}

func summaryCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	summary := a.reporter.MonthlySummary(cmd.Context())
	if len(summary) == 0 {
		fmt.Println("No transactions to summarize.")
		return nil
	}
	for _, row := range summary {
		fmt.Println(a.renderer.MonthNet(row))
	}
	return nil
}

func categoriesCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	breakdown := a.reporter.CategoryBreakdown(cmd.Context())
	if len(breakdown) == 0 {
		fmt.Println("No transactions.")
		return nil
	}
	for _, row := range breakdown {
		fmt.Println(a.renderer.CategoryTotal(row))
	}
	return nil
}
