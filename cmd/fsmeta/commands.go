package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var errLookupFailed = errors.New("lookup failed")

type rootFlags struct {
	configPath string
	logLevel   string
	output     string
	degraded   bool
}

// NewRootCmd returns the fsmeta command with all subcommands. Results are
// written to stdout, logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		flags rootFlags
		a     *app
	)

	rootCmd := &cobra.Command{
		Use:           "fsmeta",
		Short:         "Show the owner and permissions of a filesystem path",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadEffectiveConfig(cmd, flags)
			if err != nil {
				return err
			}

			logger, err := NewLogger(stderr, cfg)
			if err != nil {
				return err
			}

			a, err = newApp(cfg, logger, stdout)
			return err
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to config file")
	pf.StringVar(&flags.logLevel, "log-level", DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	pf.StringVarP(&flags.output, "output", "o", DefaultOutput, "Output format (text, json, yaml)")
	pf.BoolVar(&flags.degraded, "degraded", false, "Report unknown:unknown instead of failing owner lookups")

	ownerCmd := &cobra.Command{
		Use:   "owner PATH",
		Short: "Print the owner of PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(args[0], true, false)
		},
	}

	permsCmd := &cobra.Command{
		Use:     "perms PATH",
		Aliases: []string{"permissions"},
		Short:   "Print the permission string of PATH",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(args[0], false, true)
		},
	}

	statCmd := &cobra.Command{
		Use:   "stat PATH",
		Short: "Print permissions and owner of PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.show(args[0], true, true)
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Print permissions and owner of PATH whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, args[0])
		},
	}

	rootCmd.AddCommand(ownerCmd, permsCmd, statCmd, watchCmd)
	return rootCmd
}

// loadEffectiveConfig reads the config file, if any, and applies explicitly
// set flags on top of it.
func loadEffectiveConfig(cmd *cobra.Command, flags rootFlags) (*Config, error) {
	path, err := FindConfigFile(flags.configPath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if path != "" {
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("output") {
		cfg.Output = flags.output
	}
	if pf.Changed("degraded") {
		cfg.DegradedOwner = flags.degraded
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
