package config

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harun/paypal-agent-toolkit/pkg/permission"
)

// Wizard provides an interactive configuration wizard
type Wizard struct {
	reader *bufio.Reader
	out    io.Writer
	known  permission.Actions
}

// NewWizard creates a wizard offering the actions in known
func NewWizard(in io.Reader, out io.Writer, known permission.Actions) *Wizard {
	return &Wizard{
		reader: bufio.NewReader(in),
		out:    out,
		known:  known,
	}
}

// Run runs the interactive configuration wizard
func (w *Wizard) Run() (*Config, error) {
	w.println("=== PayPal Toolkit Configuration ===")
	w.println()

	cfg := DefaultConfig()
	validator := NewValidator()

	// Environment
	w.print("Use the PayPal sandbox? (y/n) [y]: ")
	sandbox, err := w.readLine()
	if err != nil {
		return nil, err
	}
	cfg.Context.Sandbox = sandbox == "" || strings.EqualFold(sandbox, "y")
	w.println()

	// Actions
	w.println("Actions (comma separated, * for all, Enter to skip):")
	w.println()

	for _, product := range sortedKeys(w.known) {
		offered := sortedKeys(w.known[product])

		for {
			w.printf("%s [%s]: ", product, strings.Join(offered, ", "))
			line, err := w.readLine()
			if err != nil {
				return nil, err
			}

			chosen, err := pickActions(line, offered)
			if err != nil {
				w.printf("Error: %v\n", err)
				continue
			}
			if len(chosen) > 0 {
				cfg.Actions[product] = chosen
			}
			break
		}
	}

	if err := validator.ValidateActions(cfg.Actions); err != nil {
		return nil, err
	}
	w.println()

	// Merchant
	for {
		w.print("Merchant ID (press Enter to skip): ")
		id, err := w.readLine()
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateMerchantID(id); err != nil {
			w.printf("Error: %v\n", err)
			continue
		}
		cfg.Context.MerchantID = id
		break
	}
	w.println()

	// Log Level
	w.println("Logging:")
	w.printf("Log level (%s) [info]: ", strings.Join(validLogLevels, "/"))
	level, err := w.readLine()
	if err != nil {
		return nil, err
	}

	if level != "" {
		if err := validator.ValidateLogLevel(level); err != nil {
			w.printf("Warning: %v, using default (info)\n", err)
		} else {
			cfg.Logging.Level = strings.ToLower(level)
		}
	}

	w.println()
	w.println("Configuration complete!")

	return cfg, nil
}

// pickActions parses a comma separated answer against the offered actions
func pickActions(line string, offered []string) (map[string]bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	chosen := map[string]bool{}
	if line == "*" {
		for _, action := range offered {
			chosen[action] = true
		}
		return chosen, nil
	}

	for _, part := range strings.Split(line, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		match := ""
		for _, action := range offered {
			if strings.EqualFold(action, name) {
				match = action
				break
			}
		}
		if match == "" {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		chosen[match] = true
	}
	return chosen, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (w *Wizard) readLine() (string, error) {
	line, err := w.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (w *Wizard) print(s string) {
	fmt.Fprint(w.out, s)
}

func (w *Wizard) printf(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

func (w *Wizard) println(args ...interface{}) {
	fmt.Fprintln(w.out, args...)
}
