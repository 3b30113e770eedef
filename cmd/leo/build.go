package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/leo-lang/leo-go/build"
	"github.com/leo-lang/leo-go/logger"
)

var skipCircuitCheck bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the current package as a program",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	root, err := os.Getwd()
	if err != nil {
		return err
	}

	var opts []build.Option
	if skipCircuitCheck {
		opts = append(opts, build.WithSkipCircuitVerify())
	}

	res, err := build.Run(root, opts...)
	if err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("build failed")
		return err
	}
	if res != nil && res.ChecksumChanged {
		log := logger.Logger()
		log.Info().Msg("program changed, proving artifacts need regeneration")
	}
	return nil
}

func init() {
	buildCmd.Flags().BoolVar(&skipCircuitCheck, "skip-circuit-check", false,
		"skip the circuit file round-trip consistency check")
	rootCmd.AddCommand(buildCmd)
}
