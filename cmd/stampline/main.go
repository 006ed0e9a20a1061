package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modoterra/stampline/internal/buildinfo"
	"github.com/modoterra/stampline/internal/logging"
	"github.com/modoterra/stampline/pkg/config"
	"github.com/modoterra/stampline/pkg/core"
	"github.com/modoterra/stampline/pkg/processor"
	"github.com/modoterra/stampline/pkg/sinks/journald"
	"github.com/modoterra/stampline/pkg/stamp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// options holds the flags shared by the root command and its subcommands.
type options struct {
	configPath string
	maxLine    string
	overlong   string
	utc        bool
	color      string
	journal    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "stampline",
		Short: "Timestamp non-blank lines from stdin, report blank ones on stderr",
		Long: `stampline reads lines from standard input. Lines that are empty or contain
only whitespace produce a diagnostic on standard error; every other line is
written unchanged to standard output behind a "[YYYY-MM-DD HH:MM:SS] " prefix.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to stampline.yaml")
	flags.StringVar(&opts.maxLine, "max-line", "", "maximum line length, e.g. 255, 4KiB (default 64KiB)")
	flags.StringVar(&opts.overlong, "overlong", "", "overlong lines: truncate, reject, or split (default truncate)")
	flags.BoolVar(&opts.utc, "utc", false, "render timestamps in UTC")
	flags.StringVar(&opts.color, "color", "", "colour the timestamp: never, auto, or always (default never)")
	flags.BoolVar(&opts.journal, "journal", false, "mirror diagnostics to the systemd journal")
	flags.StringVar(&opts.logLevel, "log-level", "", "operational log level: debug, info, warn, error (default warn)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// --- Root: process stdin ---

func runProcess(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.Join(errs...)
	}

	// Validate has already checked every field below.
	maxLine, _ := cfg.MaxLineBytes()
	overlong, _ := processor.ParseOverlong(cfg.Overlong)
	colorMode, _ := stamp.ParseColorMode(cfg.Color)
	level, _ := cfg.Level()

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	logger := slog.New(logging.NewTerminalHandler(stderr, level))

	var sink core.Sink
	if cfg.Journal {
		if journald.Available() {
			sink = journald.New(logger)
		} else {
			logger.Warn("journal not available, diagnostics will not be mirrored")
		}
	}

	p := processor.New(stdout, stderr, processor.Options{
		MaxLineBytes: maxLine,
		Overlong:     overlong,
		Clock:        stamp.SystemClock{UTC: cfg.UTC},
		Styler:       stamp.NewStyler(stdout, colorMode),
		Sink:         sink,
		Logger:       logger,
	})

	_, err = p.Run(cmd.Context(), cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadConfig reads --config (or the defaults) and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("max-line") {
		cfg.MaxLine = opts.maxLine
	}
	if flags.Changed("overlong") {
		cfg.Overlong = opts.overlong
	}
	if flags.Changed("utc") {
		cfg.UTC = opts.utc
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}
	if flags.Changed("journal") {
		cfg.Journal = opts.journal
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

// --- Version ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stampline %s (%s) built %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		},
	}
}

// --- Config ---

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect stampline.yaml configuration",
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a stampline.yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "stampline.yaml"
			if opts.configPath != "" {
				path = opts.configPath
			}
			if len(args) > 0 {
				path = args[0]
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			errs := config.Validate(cfg)
			if len(errs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
				return nil
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d error(s)\n", path, len(errs))
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "  • %s\n", e)
			}
			return fmt.Errorf("%s: invalid config", path)
		},
	}

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var initOutput string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a stampline.yaml file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if errs := config.Validate(cfg); len(errs) > 0 {
				return errors.Join(errs...)
			}
			if err := config.Save(cfg, initOutput); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", initOutput)
			return nil
		},
	}
	initCmd.Flags().StringVar(&initOutput, "output", "stampline.yaml", "output file path")

	configCmd.AddCommand(validateCmd)
	configCmd.AddCommand(printCmd)
	configCmd.AddCommand(initCmd)
	return configCmd
}
