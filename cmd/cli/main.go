package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gebeya-io/miniapp/internal/api"
	"github.com/gebeya-io/miniapp/internal/auth"
	"github.com/gebeya-io/miniapp/internal/common"
	"github.com/gebeya-io/miniapp/internal/config"
	"github.com/gebeya-io/miniapp/internal/host"
	"github.com/gebeya-io/miniapp/internal/session"
)

// Global configuration instance
var cfg *config.Config

// Wired client components, built once per invocation by preRunClientE.
var (
	bridge   host.Bridge
	sessions session.Store
	client   *api.Client
	flow     *auth.Flow
)

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

// preRunClientE wires the client stack: config, host bridge, session store,
// API client, auth flow. Runs before every command.
func preRunClientE(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	apiURL, err := cmd.Flags().GetString("api-url")
	if err == nil {
		cfg.SetAPIBaseURL(apiURL)
	}

	bridge = host.New(cfg.Host, host.Options{})

	store, err := session.NewFileStore(cfg.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	sessions = store

	client = api.New(cfg.GetAPIBaseURL(), cfg.GetAPIPrefix(), sessions)
	flow = auth.NewFlow(bridge, client, sessions)

	// Page-load lifecycle: tell the host we are up before anything else.
	bridge.Ready()
	bridge.Expand()

	return nil
}

// preAuthenticateE runs the startup auth sequence for commands that need an
// authenticated user.
func preAuthenticateE(cmd *cobra.Command, args []string) error {
	if err := preRunClientE(cmd, args); err != nil {
		return err
	}

	if err := flow.Startup(cmd.Context()); err != nil {
		return fmt.Errorf("authentication failed: %s", flow.Err())
	}

	if flow.State() != auth.StateAuthenticated {
		return fmt.Errorf("not authenticated: %s", flow.Err())
	}

	return nil
}

var rootCmd = &cobra.Command{
	Use:   "gebeya",
	Short: "Gebeya marketplace client",
	Long: `Client for the Gebeya marketplace backend.

When launched by the embedding host the signed payload arrives through the
GEBEYA_INIT_DATA environment variable and is exchanged for a session
credential. Without it the client runs standalone against a development
backend with a local placeholder identity.`,
	PersistentPreRunE: preRunClientE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd, args)
	},
}

func init() {
	// Enables --version alongside the version subcommand.
	rootCmd.Version = common.GetVersion()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default searches ., ./config, ~/.config/gebeya)")
	rootCmd.PersistentFlags().String("api-url", "", "Override the backend base URL (e.g., http://localhost:8000)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
