package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sabalabor/internal/bootstrap"
	"sabalabor/internal/platform/config"
	"sabalabor/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	apiURL     string
	store      string
	dataDir    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sabalabor",
		Short:         "SabaLabor marketplace client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.sabalabor/config.yaml)")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "API base URL")
	root.PersistentFlags().StringVar(&opts.store, "store", "", "credential store: file|sqlite|redis|memory")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for local state")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")

	root.AddCommand(newLoginCmd(opts))
	root.AddCommand(newRegisterCmd(opts))
	root.AddCommand(newLogoutCmd(opts))
	root.AddCommand(newWhoamiCmd(opts))
	root.AddCommand(newJobsCmd(opts))
	root.AddCommand(newProfileCmd(opts))
	root.AddCommand(newWorkersCmd(opts))
	root.AddCommand(newPaymentsCmd(opts))
	root.AddCommand(newNotificationsCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newDevServerCmd(opts))
	return root
}

func (o *rootOptions) config() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.apiURL != "" {
		cfg.APIBaseURL = o.apiURL
	}
	if o.store != "" {
		cfg.Store = o.store
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadApp wires the application and restores the stored session so every
// command starts from the same state the TUI would.
func loadApp(ctx context.Context, opts *rootOptions, logOut io.Writer) (*bootstrap.App, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}
	app, err := bootstrap.New(cfg, logging.New(logOut, cfg.LogLevel, cfg.LogFormat))
	if err != nil {
		return nil, err
	}
	app.SessionCLI.Restore(ctx)
	return app, nil
}

// run loads the app, calls fn and closes the app.
func run(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := loadApp(ctx, opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the SabaLabor terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(cfg.LogPath()), 0o700); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()

			app, err := bootstrap.New(cfg, logging.New(logFile, cfg.LogLevel, cfg.LogFormat))
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}
