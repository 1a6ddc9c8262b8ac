package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/kinolist/mockapi"
)

var mockAPIAddr string

// mockAPICmd represents the mockapi command
var mockAPICmd = &cobra.Command{
	Use:   "mockapi",
	Short: "Run a local in-memory collection backend",
	Long: `Serve the five collection endpoints from memory, the way mockapi.io does.
Point backend.url at http://localhost:3001/kinolist/rate to use it.`,
	RunE: runMockAPI,
}

func init() {
	rootCmd.AddCommand(mockAPICmd)

	mockAPICmd.Flags().StringVar(&mockAPIAddr, "addr", "", "listen address (overrides mockapi.addr)")
}

func runMockAPI(cmd *cobra.Command, args []string) error {
	addr := cfg.MockAPI.Addr
	if mockAPIAddr != "" {
		addr = mockAPIAddr
	}

	server := mockapi.NewServer(logger.With().Str("component", "mockapi").Logger())
	return runUntilSignal(cmd.Context(), cfg.Server.ShutdownTimeout,
		func() error { return server.Start(addr) },
		server.Shutdown,
	)
}
