package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/layerforge/layerforge/internal/config"
	"github.com/layerforge/layerforge/internal/server"
)

// newServeCmd creates the serve command, which runs the HTTP API around
// the same pipeline the other commands use.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config)")

	return cmd
}

func runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)

	if addr == "" {
		cfg, err := config.Load(configPathFromContext(ctx))
		if err != nil {
			return err
		}
		addr = cfg.Server.Addr
	}

	runner, err := newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	srv := server.New(runner, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
