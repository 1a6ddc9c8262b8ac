package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/kinolist/catalog"
	"github.com/s0up4200/kinolist/config"
	"github.com/s0up4200/kinolist/page"
)

var (
	cfgFile       string
	cfg           *config.Config
	logger        zerolog.Logger
	catalogClient *catalog.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "kinolist",
	Short: "Keep a personal catalog of rated movies",
	Long: `kinolist manages your personally rated movies: add, edit, delete and
view them from a browser page (kinolist serve) or straight from the terminal.
Ratings are stored in a mockapi.io style REST collection.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
}

// initializeApp loads the configuration and creates the collection client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	catalogClient, err = catalog.NewClient(cfg.Backend.URL, logger,
		catalog.WithTimeout(cfg.Backend.Timeout),
		catalog.WithUserAgent("kinolist/"+appVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// newPage creates a page over the configured collection
func newPage() *page.Page {
	var opts []page.Option
	if cfg.Form.PreserveOnFailure {
		opts = append(opts, page.WithPreserveFormOnFailure())
	}
	return page.New(catalogClient, logger.With().Str("component", "page").Logger(), opts...)
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the collection backend",
	Long:  `Test the connection to the rated-movie collection and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to %s...\n", catalogClient.BaseURL())

	if err := catalogClient.TestConnection(cmd.Context()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	entries, err := catalogClient.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}
	fmt.Fprintf(out, "- Rated movies: %d\n", len(entries))
	return nil
}
