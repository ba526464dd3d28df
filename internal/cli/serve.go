package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagesmith/pagesmith/internal/api"
	"github.com/pagesmith/pagesmith/pkg/store"
)

// serveCommand runs the document HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		backend    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve documents over HTTP",
		Long: `Serve documents over an HTTP API backed by a configurable store.

Configuration is read from a TOML file. Flags override the file. With no
config the server uses a file-backed store on localhost.`,
		Example: `  pagesmith serve
  pagesmith serve --addr :9000 --store memory
  pagesmith serve --config ./pagesmith.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if backend != "" {
				cfg.Store.Backend = backend
			}

			b, err := openBackend(ctx, cfg.Store)
			if err != nil {
				return err
			}
			st := store.New(b)
			defer func() {
				if err := st.Close(); err != nil {
					logger.Warn("closing store", "err", err)
				}
			}()

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           api.NewServer(st, logger).Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("serving", "addr", cfg.Addr, "store", cfg.Store.Backend)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				return ctx.Err()
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&backend, "store", "", "store backend: memory, file, redis, or mongo (overrides config)")
	return cmd
}
