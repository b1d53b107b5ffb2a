package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harun/paypal-agent-toolkit/pkg/catalog"
	"github.com/harun/paypal-agent-toolkit/pkg/toolkit"
)

var (
	listAll  bool
	listJSON bool
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Inspect the tool set",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tools the configuration enables",
	Long: `List the tools the configured actions enable, in the order an agent sees them.
With --all every tool is listed together with the actions that grant it.`,
	Args: cobra.NoArgs,
	RunE: runToolsList,
}

var toolsSchemaCmd = &cobra.Command{
	Use:   "schema <tool>",
	Short: "Print the JSON-Schema of a tool's arguments",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolsSchema,
}

func init() {
	toolsListCmd.Flags().BoolVar(&listAll, "all", false, "list every tool, ignoring the configured actions")
	toolsListCmd.Flags().BoolVar(&listJSON, "json", false, "print tool descriptors as JSON")

	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsSchemaCmd)
	rootCmd.AddCommand(toolsCmd)
}

func runToolsList(cmd *cobra.Command, args []string) error {
	cfg := appConfig.ToolkitConfig()

	cat, err := catalog.New(cfg.Context)
	if err != nil {
		return err
	}
	if listAll {
		cfg.Actions = cat.Actions()
	}

	tk, err := toolkit.New(cfg, nil, toolkit.WithLogger(appLogger.GetZerolog()))
	if err != nil {
		return err
	}
	tools := tk.ListTools()

	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, tools)
	}

	if len(tools) == 0 {
		fmt.Fprintln(out, "No tools enabled. Enable actions in the config file or run: paypal-toolkit configure")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tACTIONS")
	for _, op := range tk.Tools() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", op.Name, op.HumanName, formatActions(op))
	}
	return w.Flush()
}

func runToolsSchema(cmd *cobra.Command, args []string) error {
	cat, err := catalog.New(appConfig.ExecutionContext())
	if err != nil {
		return err
	}

	op, ok := cat.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", toolkit.ErrMethodNotFound, args[0])
	}
	return writeJSON(cmd.OutOrStdout(), op.JSONSchema())
}

// formatActions renders the granting actions as "product.action" joined by
// " | ", matching the OR semantics
func formatActions(op *catalog.Operation) string {
	var parts []string
	for _, product := range sortedKeys(op.Actions) {
		for _, action := range sortedKeys(op.Actions[product]) {
			parts = append(parts, product+"."+action)
		}
	}
	return strings.Join(parts, " | ")
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
