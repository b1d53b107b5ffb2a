package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harun/paypal-agent-toolkit/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tool> [arguments]",
	Short: "Dry-run argument validation for a tool",
	Long: `Validate a JSON argument document against an enabled tool's schema and
print the normalized document the tool would receive: defaults filled, nulls
dropped and lossless string/number coercions applied.

The arguments are read from stdin when omitted or given as "-".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	raw, err := readArguments(cmd.InOrStdin(), args[1:])
	if err != nil {
		return err
	}

	tk, err := newToolkit()
	if err != nil {
		return err
	}

	doc, err := tk.Validate(args[0], raw)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			out := cmd.ErrOrStderr()
			for _, fe := range verr.Errors {
				fmt.Fprintf(out, "  %s\n", fe)
			}
			return fmt.Errorf("arguments rejected by %s", args[0])
		}
		return err
	}

	return writeJSON(cmd.OutOrStdout(), doc)
}

func readArguments(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read arguments: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return []byte("{}"), nil
	}
	return data, nil
}
