package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"budget/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	logrus.SetFormatter(&logrus.TextFormatter{})
	logrus.SetOutput(os.Stderr)

	if err := cmd.Run(os.Args[1:]); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
