package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/kinolist/filter"
	"github.com/s0up4200/kinolist/web"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the rated-movie page",
	Long: `Start the web view: the poster strip of your rated movies, the add/edit
form and the detail popup, backed by the configured collection.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := web.NewServer(newPage(), filter.NewCompiler(cfg.Filter.CacheSize), logger.With().Str("component", "web").Logger())

	logger.Info().Str("backend", catalogClient.BaseURL()).Msg("Starting web view")
	return runUntilSignal(cmd.Context(), cfg.Server.ShutdownTimeout,
		func() error { return server.Start(addr) },
		server.Shutdown,
	)
}

// runUntilSignal runs start until it fails or the process receives SIGINT or
// SIGTERM, then calls shutdown with the given grace period.
func runUntilSignal(ctx context.Context, grace time.Duration, start func() error, shutdown func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return start()
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		return shutdown(shutdownCtx)
	})

	return g.Wait()
}
