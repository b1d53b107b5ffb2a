package config

import (
	"encoding/json"

	"github.com/harun/paypal-agent-toolkit/internal/logger"
	"github.com/harun/paypal-agent-toolkit/pkg/paypal"
	"github.com/harun/paypal-agent-toolkit/pkg/permission"
	"github.com/harun/paypal-agent-toolkit/pkg/toolkit"
)

// Config represents the toolkit configuration
type Config struct {
	// Actions enables operations per product area
	Actions permission.Actions `json:"actions" mapstructure:"actions"`

	// Execution context
	Context ContextConfig `json:"context" mapstructure:"context"`

	// Caller-visible errors
	Errors ErrorsConfig `json:"errors" mapstructure:"errors"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ContextConfig holds the execution context values
type ContextConfig struct {
	Sandbox       bool                   `json:"sandbox" mapstructure:"sandbox"`
	MerchantID    string                 `json:"merchant_id" mapstructure:"merchant_id"`
	RequestID     string                 `json:"request_id" mapstructure:"request_id"`
	AccessToken   string                 `json:"access_token" mapstructure:"access_token"`
	Source        string                 `json:"source" mapstructure:"source"`
	Debug         bool                   `json:"debug" mapstructure:"debug"`
	TenantContext map[string]interface{} `json:"tenant_context,omitempty" mapstructure:"tenant_context"`
	Extra         map[string]interface{} `json:"extra,omitempty" mapstructure:"extra"`
}

// ErrorsConfig holds error envelope settings
type ErrorsConfig struct {
	MaxMessageLength int `json:"max_message_length" mapstructure:"max_message_length"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `json:"level" mapstructure:"level"`
	File        string `json:"file" mapstructure:"file"`
	Pretty      bool   `json:"pretty" mapstructure:"pretty"`
	NonBlocking bool   `json:"non_blocking" mapstructure:"non_blocking"`
	MaxSize     int    `json:"max_size" mapstructure:"max_size"` // MB
	MaxAge      int    `json:"max_age" mapstructure:"max_age"`   // days
	Compress    bool   `json:"compress" mapstructure:"compress"`
	Redaction   bool   `json:"redaction" mapstructure:"redaction"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Actions: permission.Actions{},
		Context: ContextConfig{
			Sandbox: true,
			Source:  "cli",
		},
		Errors: ErrorsConfig{
			MaxMessageLength: toolkit.DefaultMaxErrorLength,
		},
		Logging: LoggingConfig{
			Level:       "info",
			NonBlocking: true,
			MaxSize:     100,
			MaxAge:      7,
			Compress:    true,
			Redaction:   true,
		},
	}
}

// String returns a JSON representation of the config with the access token
// masked
func (c *Config) String() string {
	masked := *c
	if masked.Context.AccessToken != "" {
		masked.Context.AccessToken = "[REDACTED]"
	}
	data, _ := json.MarshalIndent(masked, "", "  ")
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if errs := NewValidator().ValidateConfig(c); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ExecutionContext converts the context section for the PayPal client
func (c *Config) ExecutionContext() paypal.ExecutionContext {
	execCtx := paypal.ExecutionContext{
		Sandbox:     paypal.Bool(c.Context.Sandbox),
		MerchantID:  c.Context.MerchantID,
		RequestID:   c.Context.RequestID,
		AccessToken: c.Context.AccessToken,
		Source:      c.Context.Source,
		Debug:       c.Context.Debug,
		Extra:       c.Context.Extra,
	}
	if len(c.Context.TenantContext) > 0 {
		execCtx.TenantContext = c.Context.TenantContext
	}
	return execCtx
}

// ToolkitConfig returns the toolkit construction parameters
func (c *Config) ToolkitConfig() toolkit.Config {
	return toolkit.Config{
		Actions:        c.Actions,
		Context:        c.ExecutionContext(),
		MaxErrorLength: c.Errors.MaxMessageLength,
	}
}

// LoggerConfig maps the logging section to the logger package. Console output
// goes to stderr so command output on stdout stays machine readable.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Logging.Level,
		File:        c.Logging.File,
		Console:     true,
		Pretty:      c.Logging.Pretty,
		Redaction:   c.Logging.Redaction,
		NonBlocking: c.Logging.NonBlocking,
		BufferSize:  1000,
		MaxSize:     c.Logging.MaxSize,
		MaxAge:      c.Logging.MaxAge,
		Compress:    c.Logging.Compress,
	}
}
