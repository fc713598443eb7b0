package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/mandrill/config"
	"github.com/s0up4200/mandrill/mandrill"
)

var (
	cfgFile   string
	apiKey    string
	baseURL   string
	debug     bool
	outputFmt string

	cfg    *config.Config
	logger zerolog.Logger

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mandrill",
	Short: "A command line client for the Mandrill transactional email API",
	Long: `mandrill calls the Mandrill API from the command line.

Every API endpoint is available as "mandrill <category> <method>", with one
flag per parameter. Results are printed as JSON.

The API key is taken from --key, the config file, MANDRILL_APIKEY,
~/.mandrill.key or /etc/mandrill.key, in that order.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records the build information reported by the version command.
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "key", "", "Mandrill API key")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API root (default "+mandrill.DefaultBaseURL+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log requests, connection events and responses")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "pretty", "output format (json, pretty); defaults to json when stdout is not a terminal")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := addEndpointCommands(rootCmd); err != nil {
		panic(err)
	}
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line flags win over the config file
	if cmd.Flags().Changed("key") {
		cfg.APIKey = apiKey
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}

	// Compact JSON when stdout is not a terminal, unless --output is given
	if !cmd.Flags().Changed("output") && !isTerminal(os.Stdout) {
		outputFmt = "json"
	}

	switch outputFmt {
	case "json", "pretty":
	default:
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'pretty')", outputFmt)
	}

	logger = setupLogger(cfg.Logging, cfg.Debug)

	if cfg.File != "" {
		logger.Debug().Str("file", cfg.File).Msg("Loaded config")
	}

	return nil
}

// newClient creates an API client from the loaded configuration
func newClient() (*mandrill.Client, error) {
	client, err := mandrill.New(cfg.APIKey,
		mandrill.WithBaseURL(cfg.BaseURL),
		mandrill.WithDebug(cfg.Debug),
		mandrill.WithLogger(logger),
		mandrill.WithTimeout(cfg.Timeout),
		mandrill.WithConnectTimeout(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Mandrill client: %w", err)
	}
	return client, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, debug bool) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	if debug && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
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
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
