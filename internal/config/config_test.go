package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harun/paypal-agent-toolkit/pkg/permission"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.True(t, cfg.Context.Sandbox)
	assert.Equal(t, "cli", cfg.Context.Source)
	assert.Equal(t, 200, cfg.Errors.MaxMessageLength)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Redaction)
	assert.True(t, cfg.Logging.NonBlocking)
	assert.Empty(t, cfg.Actions)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Actions = permission.Actions{"invoices": {"create": true}}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{
			name:    "no actions",
			mutate:  func(c *Config) { c.Actions = permission.Actions{} },
			wantErr: "no actions enabled",
		},
		{
			name:    "only falsy flags",
			mutate:  func(c *Config) { c.Actions = permission.Actions{"invoices": {"create": false}} },
			wantErr: "no actions enabled",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "zero message cap",
			mutate:  func(c *Config) { c.Errors.MaxMessageLength = 0 },
			wantErr: "max_message_length",
		},
		{
			name:    "malformed merchant",
			mutate:  func(c *Config) { c.Context.MerchantID = "merchant@example.com" },
			wantErr: "invalid merchant ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigToolkitConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Actions = permission.Actions{"orders": {"create": true}}
	cfg.Context.Sandbox = false
	cfg.Context.MerchantID = "ABCDEFGHIJ123"
	cfg.Context.TenantContext = map[string]interface{}{"tenant": "acme"}
	cfg.Errors.MaxMessageLength = 80

	tc := cfg.ToolkitConfig()

	assert.Equal(t, cfg.Actions, tc.Actions)
	assert.Equal(t, 80, tc.MaxErrorLength)
	assert.False(t, tc.Context.IsSandbox())
	assert.Equal(t, "live", tc.Context.Environment())
	assert.Equal(t, "ABCDEFGHIJ123", tc.Context.MerchantID)
	assert.Equal(t, "cli", tc.Context.Source)
	assert.Equal(t, map[string]interface{}{"tenant": "acme"}, tc.Context.TenantContext)
}

func TestConfigExecutionContext_NoTenant(t *testing.T) {
	execCtx := DefaultConfig().ExecutionContext()

	assert.True(t, execCtx.IsSandbox())
	assert.Nil(t, execCtx.TenantContext)
}

func TestConfigLoggerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/toolkit.log"

	lc := cfg.LoggerConfig()

	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/toolkit.log", lc.File)
	assert.True(t, lc.Console)
	assert.True(t, lc.Redaction)
	assert.True(t, lc.NonBlocking)
}

func TestConfigString_MasksAccessToken(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Context.AccessToken = "A21AAsecret"

	out := cfg.String()

	assert.NotContains(t, out, "A21AAsecret")
	assert.Contains(t, out, "[REDACTED]")
	assert.Equal(t, "A21AAsecret", cfg.Context.AccessToken)
}
