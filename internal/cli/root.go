package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todocard/internal/config"
	"todocard/internal/logging"
	"todocard/internal/todo"
	"todocard/internal/ui"
)

type options struct {
	configPath string
	filter     string
	logFile    string
	logLevel   string
}

// runFunc starts the card. Tests swap it to inspect the wiring without a
// terminal.
type runFunc func(store *todo.Store, cfg config.Config, logger *log.Logger) error

func NewRootCmd() *cobra.Command {
	return newRootCmd(ui.Run)
}

func newRootCmd(run runFunc) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A small to-do card for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return start(cmd, opts, run)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.toml (defaults to $XDG_CONFIG_HOME/todocard/config.toml)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Initial filter: all, pending or completed (overrides default_filter)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file (overrides log_file)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log_level)")
	return cmd
}

func start(cmd *cobra.Command, opts *options, run runFunc) error {
	path := opts.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("filter") {
		cfg.DefaultFilter = opts.filter
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	filter, err := cfg.Filter()
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("config loaded", "path", path, "filter", filter)

	store := todo.NewStore(todo.NewState(filter), logger)
	if err := run(store, cfg, logger); err != nil {
		logger.Error("card exited", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
