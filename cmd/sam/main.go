package main

import (
	"github.com/spf13/cobra"
)

var (
	logLevel string
)

func init() {
	Sam.AddCommand(
		benchCommand(),
		queryCommand(),
	)
	Sam.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
}

var (
	Sam = &cobra.Command{
		Use:           "sam",
		Short:         "sam builds suffix automata over text and queries or benchmarks them",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
	}
)

func main() {
	if err := Sam.Execute(); err != nil {
		logFatal(err)
	}
}
