// Command primer plays the course from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/b97tsk/primer"
)

var (
	cfgPath string
	verbose bool
	noColor bool
	pace    string

	cfg    *primer.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "primer",
	Short: "A course of runnable Go lessons",
	Long: `primer plays small, narrated Go lessons in the terminal:
iterators, patterns, SOLID, decorators, and a cooperative event loop.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		cfg, err = primer.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		if noColor {
			cfg.Color = false
		}
		if pace != "" {
			cfg.Pace = pace
		}

		logger, err = buildLogger(cfg.LogLevel, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "primer.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain headings")
	rootCmd.PersistentFlags().StringVar(&pace, "pace", "", "narration delay per line, e.g. 300ms")
}

func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
