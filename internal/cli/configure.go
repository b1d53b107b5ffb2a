package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/paypal-agent-toolkit/internal/config"
	"github.com/harun/paypal-agent-toolkit/pkg/catalog"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Run interactive configuration wizard",
	Long: `Run an interactive configuration wizard to set up the toolkit.
The wizard will guide you through the environment, the actions to enable per
product area, and logging.`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cat, err := catalog.New(appConfig.ExecutionContext())
	if err != nil {
		return err
	}
	known := cat.Actions()

	wizard := config.NewWizard(cmd.InOrStdin(), cmd.OutOrStdout(), known)

	cfg, err := wizard.Run()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	// the wizard does not ask for these
	cfg.Context.Source = appConfig.Context.Source
	cfg.Context.RequestID = appConfig.Context.RequestID
	cfg.Errors = appConfig.Errors
	cfg.Logging.File = appConfig.Logging.File

	if errs := config.NewValidator().WithKnownActions(known).ValidateConfig(cfg); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errs[0])
	}

	loader := config.NewLoader(cfgFile)
	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nConfiguration saved to: %s\n", loader.GetConfigPath())
	fmt.Fprintln(out, "\nList the enabled tools with: paypal-toolkit tools list")

	return nil
}
