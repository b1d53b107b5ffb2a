package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/paypal-agent-toolkit/pkg/permission"
)

var wizardActions = permission.Actions{
	"invoices": {"create": true, "list": true, "sendReminder": true},
	"orders":   {"create": true, "get": true},
}

func TestWizardRun(t *testing.T) {
	t.Run("picks actions per product", func(t *testing.T) {
		input := strings.Join([]string{
			"n",
			"create, SENDREMINDER",
			"*",
			"ABCDEFGHIJ123",
			"debug",
		}, "\n") + "\n"
		var out bytes.Buffer

		cfg, err := NewWizard(strings.NewReader(input), &out, wizardActions).Run()

		require.NoError(t, err)
		assert.False(t, cfg.Context.Sandbox)
		assert.Equal(t, map[string]bool{"create": true, "sendReminder": true}, cfg.Actions["invoices"])
		assert.Equal(t, map[string]bool{"create": true, "get": true}, cfg.Actions["orders"])
		assert.Equal(t, "ABCDEFGHIJ123", cfg.Context.MerchantID)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Contains(t, out.String(), "invoices [create, list, sendReminder]")
		assert.Contains(t, out.String(), "Configuration complete!")
	})

	t.Run("reprompts on unknown action", func(t *testing.T) {
		input := "\nrefund\nlist\n\n\n\n"
		var out bytes.Buffer

		cfg, err := NewWizard(strings.NewReader(input), &out, wizardActions).Run()

		require.NoError(t, err)
		assert.True(t, cfg.Context.Sandbox)
		assert.Equal(t, map[string]bool{"list": true}, cfg.Actions["invoices"])
		assert.NotContains(t, cfg.Actions, "orders")
		assert.Contains(t, out.String(), `unknown action "refund"`)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("nothing enabled", func(t *testing.T) {
		_, err := NewWizard(strings.NewReader("y\n\n\n"), &bytes.Buffer{}, wizardActions).Run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no actions enabled")
	})

	t.Run("input ends early", func(t *testing.T) {
		_, err := NewWizard(strings.NewReader("y\n"), &bytes.Buffer{}, wizardActions).Run()
		assert.Error(t, err)
	})
}

func TestPickActions(t *testing.T) {
	offered := []string{"create", "list"}

	tests := []struct {
		line    string
		want    map[string]bool
		wantErr bool
	}{
		{line: "", want: nil},
		{line: "*", want: map[string]bool{"create": true, "list": true}},
		{line: "List", want: map[string]bool{"list": true}},
		{line: "create,,list ", want: map[string]bool{"create": true, "list": true}},
		{line: "delete", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := pickActions(tt.line, offered)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
