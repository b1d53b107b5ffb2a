package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/paypal-agent-toolkit/internal/config"
	"github.com/harun/paypal-agent-toolkit/internal/logger"
	"github.com/harun/paypal-agent-toolkit/pkg/toolkit"
)

const version = "0.1.0"

var (
	cfgFile  string
	logLevel string

	// set by the root pre-run for the command being executed
	appConfig *config.Config
	appLogger *logger.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paypal-toolkit",
	Short: "PayPal Toolkit - tool catalog for LLM agents",
	Long: `PayPal Toolkit exposes PayPal operations as tools for LLM agents.
This command inspects the tool set a configuration enables, prints tool
JSON-Schemas and dry-runs argument validation. It never calls the PayPal API.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.paypal-toolkit/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides the config file")

	// Version template
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

// setup loads the configuration and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		if err := config.NewValidator().ValidateLogLevel(logLevel); err != nil {
			return err
		}
		cfg.Logging.Level = logLevel
	}

	l, err := logger.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appConfig = cfg
	appLogger = l
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if appLogger == nil {
		return nil
	}
	err := appLogger.Close()
	appLogger = nil
	return err
}

// newToolkit builds a toolkit from the loaded configuration. It has no
// transport, so it can list and validate but every dispatch fails with a
// configuration error.
func newToolkit() (*toolkit.Toolkit, error) {
	opts := []toolkit.Option{toolkit.WithLogger(appLogger.GetZerolog())}
	return toolkit.New(appConfig.ToolkitConfig(), nil, opts...)
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// GetVersion returns the current version
func GetVersion() string {
	return version
}
