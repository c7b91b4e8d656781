package main

import (
	"log/slog"
	"os"

	"github.com/govalues/annuity/internal/command"
	"github.com/govalues/annuity/internal/log"
)

func main() {
	app := command.New(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logger := log.New(log.Config{Level: slog.LevelInfo, Component: log.ComponentCLI, Writer: os.Stderr})
		logger.Error("annuity failed", log.FieldError, err)
		os.Exit(1)
	}
}
