package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

var (
	boldRed   = color.New(color.FgRed, color.Bold).SprintfFunc()
	boldGreen = color.New(color.FgGreen, color.Bold).SprintfFunc()
	red       = color.New(color.FgRed).SprintfFunc()
)

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger = logger.Level(lvl)
	return nil
}

func logFatal(err error) {
	if errorMsg := err.Error(); errorMsg != "" {
		for _, line := range strings.Split(errorMsg, "\n") {
			fmt.Fprintln(os.Stderr, boldRed(line))
		}
	}
	os.Exit(2)
}
