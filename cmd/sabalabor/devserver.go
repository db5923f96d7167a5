package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sabalabor/internal/devserver"
	"sabalabor/internal/platform/logging"
)

func newDevServerCmd(opts *rootOptions) *cobra.Command {
	var addr, secret string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Run an in-memory SabaLabor API for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := opts.logLevel
			if level == "" {
				level = "info"
			}
			logger := logging.New(cmd.ErrOrStderr(), level, "text")
			if secret == "" {
				secret = os.Getenv("SABALABOR_DEV_SECRET")
			}
			if secret == "" {
				return fmt.Errorf("a signing secret is required (--secret or SABALABOR_DEV_SECRET)")
			}

			srv := &http.Server{
				Addr: addr,
				Handler: devserver.New(devserver.Options{
					Secret:   []byte(secret),
					TokenTTL: ttl,
					Logger:   logger,
				}),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				logger.Info("devserver listening", "addr", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("devserver shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().StringVar(&secret, "secret", "", "HS256 signing secret")
	cmd.Flags().DurationVar(&ttl, "token-ttl", devserver.DefaultTTL, "issued token lifetime")
	return cmd
}
