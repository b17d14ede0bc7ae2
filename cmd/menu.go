package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"budget/internal/consumer"
)

var menuCmd = &cobra.Command{
	Use:          "menu",
	Short:        "Run the interactive menu",
	RunE:         menuCmdF,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(menuCmd)
	RootCmd.RunE = menuCmdF
}

func menuCmdF(cmd *cobra.Command, args []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// every mutation is persisted before it returns, so an interrupt can
	// exit right away even while a prompt is blocked on stdin
	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interruptChan
		cancel()
		fmt.Println("\nInterrupted — exiting.")
		os.Exit(0)
	}()

	menu := consumer.NewMenu(os.Stdin, os.Stdout, a.parser, a.recorder, a.reporter, a.renderer, a.cfg.Budget)
	menu.Consume(ctx)
	return nil
}
