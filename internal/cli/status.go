package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harun/paypal-agent-toolkit/internal/config"
	"github.com/harun/paypal-agent-toolkit/pkg/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration status",
	Long: `Show where the configuration is read from, the PayPal environment, how
many tools the enabled actions expose, and any configuration problems.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := config.NewLoader(cfgFile).GetConfigPath()

	source := "defaults"
	if _, err := os.Stat(path); err == nil {
		source = path
	}

	cat, err := catalog.New(appConfig.ExecutionContext())
	if err != nil {
		return err
	}
	enabled := cat.Allowed(appConfig.Actions)

	fmt.Fprintf(out, "Config: %s\n", source)
	fmt.Fprintf(out, "Environment: %s\n", appConfig.ExecutionContext().Environment())
	fmt.Fprintf(out, "Tools: %d of %d enabled\n", len(enabled), len(cat.Operations()))
	if appConfig.Context.AccessToken != "" {
		fmt.Fprintln(out, "Access token: set")
	}

	errs := config.NewValidator().WithKnownActions(cat.Actions()).ValidateConfig(appConfig)
	if len(errs) == 0 {
		fmt.Fprintln(out, "Status: ok")
		return nil
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, "  - "+err.Error())
	}
	fmt.Fprintf(out, "Status: %d problem(s)\n%s\n", len(errs), strings.Join(msgs, "\n"))
	return nil
}
