// Package cmd implements the mazegen command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-mazegen/config"
	logger "github.com/beka-birhanu/vinom-mazegen/infrastruture/log"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs after the configuration is loaded.
type app struct {
	envFile string
	cfg     config.Config
}

// newLogger creates a component logger writing to w.
func newLogger(prefix, color string, w io.Writer) *logger.Logger {
	l, err := logger.New(prefix, color, w)
	if err != nil {
		return logger.Nop()
	}
	return l
}

// NewRootCmd builds the mazegen command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "mazegen",
		Short:         "mazegen carves perfect mazes with a randomized depth-first search",
		Long:          `mazegen generates perfect mazes step by step, animates them in the terminal, exports them as text, JSON, YAML, protobuf or PNG, and serves them over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Environment file to load before reading the environment")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newServeCmd(a),
		newTokenCmd(a),
	)
	return rootCmd
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
