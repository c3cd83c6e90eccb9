// Package main provides the gofit CLI. It wires subcommands (demo, gen),
// initializes logging, and executes the root command.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gofit-ml/gofit/pkg/log"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "gofit",
		Short: "Demos for the gofit estimators on synthetic social data",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetupLogger(logLevel)
			log.InitWarningBridge()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		demoCommand(),
		genCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
