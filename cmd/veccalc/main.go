// Package main is the entry point for veccalc, a command-line vector calculator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/vecmath/internal/config"
	"github.com/Faultbox/vecmath/internal/logger"
	"github.com/Faultbox/vecmath/pkg/math"
)

const appName = "veccalc"

// app is the state shared by all subcommands once config is loaded.
type app struct {
	configPath string
	overrides  config.Overrides
	precision  int

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Evaluate 3D and 4D vector operations",
		Long: `veccalc evaluates a single vector operation and prints the result.

Vectors are written as comma separated components: 1,2,3 for a 3D vector and
1,2,3,4 for a 4D vector. The first operand decides which type is used.
Put -- before operands that start with a minus sign.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("precision") {
				a.overrides.Precision = &a.precision
			}
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to config file")
	pf.BoolVar(&a.overrides.Debug, "debug", false, "Enable debug logging")
	pf.StringVar(&a.overrides.LogFile, "log-file", "", "Also write logs to this file")
	pf.IntVar(&a.precision, "precision", 6, "Decimal places in output (-1 for shortest)")

	root.AddCommand(vectorCommands(a)...)
	root.AddCommand(newConfigCmd(a))

	return root
}

// init loads config and wires the logger into the math package.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath, a.overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	math.SetLogger(logger.Log)

	logger.Log.Debug("config loaded",
		zap.String("level", cfg.Logging.Level),
		zap.Int("precision", cfg.Output.Precision),
	)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
