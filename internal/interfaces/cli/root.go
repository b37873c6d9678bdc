// Package cli implements the resincalc command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/internal/application/service"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/catalog"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/config"
	"github.com/hapkiduki/resin-calc/internal/infrastructure/logging"
	"github.com/hapkiduki/resin-calc/pkg/logger"
)

// Version is set at build time
var Version = "dev"

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	debug      bool
	output     string
}

// app is the wiring built once per invocation from config and flags.
type app struct {
	cfg        *config.Config
	log        *logger.Logger
	calculator *service.CalculatorService
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the resincalc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "resincalc",
		Short: "Calculate how much epoxy resin a mold needs",
		Long: `resincalc computes the resin volume for a mold, adds a safety margin,
splits it into Part A and Part B and recommends the resin type.

Examples:
  resincalc rectangle --length 24 --width 12 --depth 1
  resincalc circle --diameter 4 --depth 0.5 --output json
  resincalc rectangle -l 10 -w 10 -d 2 --margin 0.1 --ratio 2:1`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case OutputText, OutputJSON:
				return nil
			}
			return fmt.Errorf("unknown output format %q (want %s or %s)", opts.output, OutputText, OutputJSON)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./config.yaml, ./configs, /etc/resin-calc)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", OutputText, "output format: text or json")

	cmd.AddCommand(rectangleCmd(opts))
	cmd.AddCommand(circleCmd(opts))
	cmd.AddCommand(productsCmd(opts))
	cmd.AddCommand(versionCmd())

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, c.CommandPath())
	})
	return cmd
}

// newApp loads configuration and builds the calculator service.
func newApp(opts *options, stderr io.Writer) (*app, error) {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = "warn"
	if opts.debug {
		logCfg.Level = "debug"
	}
	logCfg.Format = "console"
	logCfg.Output = stderr
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	products, err := catalog.NewFromConfig(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build product catalog: %w", err)
	}

	margin, err := cfg.Calculator.Margin()
	if err != nil {
		return nil, err
	}
	ratio, err := cfg.Calculator.MixRatio()
	if err != nil {
		return nil, err
	}

	calculator := service.NewCalculatorService(products, logging.NewAdapter(log), port.NopMetrics{}, service.Defaults{
		MarginRate: margin,
		MixRatio:   ratio,
	})

	log.Debug("Configuration loaded",
		"margin_rate", float64(margin),
		"mix_ratio", ratio.String(),
		"products", len(cfg.Catalog.Products),
	)

	return &app{cfg: cfg, log: log, calculator: calculator}, nil
}

// run builds the app, calls fn and flushes the logger.
func run(cmd *cobra.Command, opts *options, fn func(a *app) error) error {
	a, err := newApp(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()
	return fn(a)
}
