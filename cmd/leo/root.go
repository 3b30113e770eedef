package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leo-lang/leo-go/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "leo",
	Short: "Build packages into arithmetic circuits",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Set(logger.Logger().Level(zerolog.DebugLevel))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
