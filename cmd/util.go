package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"budget/internal/config"
	"budget/internal/input"
	"budget/internal/render"
	"budget/internal/repository"
	"budget/internal/service"
)

// app bundles the services wired up for one command invocation.
type app struct {
	cfg      *config.Config
	parser   *input.Parser
	recorder *service.Recorder
	reporter *service.Reporter
	renderer *render.Renderer
}

func buildApp(cmd *cobra.Command) (*app, error) {
	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse environment config: %v", err)
	}
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		cfg.Budget.File = file
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	store, err := repository.Open(cfg.Budget.File)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		parser:   input.NewParser(validator.New()),
		recorder: service.NewRecorder(store),
		reporter: service.NewReporter(store),
		renderer: render.New(),
	}, nil
}
