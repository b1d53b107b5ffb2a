package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/harun/paypal-agent-toolkit/pkg/permission"
)

var (
	// PayPal merchant (payer) IDs are 13 upper-case alphanumerics.
	merchantIDPattern = regexp.MustCompile(`^[A-Z0-9]{13}$`)

	validLogLevels = []string{"trace", "debug", "info", "warn", "error"}
)

// Validator validates configuration values
type Validator struct {
	// known lists the actions operations can be granted by. Nil skips the
	// unknown-action check.
	known permission.Actions
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// WithKnownActions makes ValidateConfig reject actions no operation uses
func (v *Validator) WithKnownActions(known permission.Actions) *Validator {
	v.known = known
	return v
}

// ValidateActions requires at least one enabled action
func (v *Validator) ValidateActions(actions permission.Actions) error {
	if actions.Count() == 0 {
		return fmt.Errorf("no actions enabled: at least one product action must be true")
	}
	return nil
}

// UnknownActions returns the enabled "product.action" pairs no operation can be
// granted by, sorted
func (v *Validator) UnknownActions(actions permission.Actions) []string {
	if v.known == nil {
		return nil
	}

	var unknown []string
	for product, flags := range actions {
		for action, on := range flags {
			if on && !v.known.Enabled(product, action) {
				unknown = append(unknown, product+"."+action)
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}

// ValidateMerchantID validates a merchant ID format
func (v *Validator) ValidateMerchantID(id string) error {
	if id == "" {
		return nil // Optional
	}
	if !merchantIDPattern.MatchString(id) {
		return fmt.Errorf("invalid merchant ID format: %s", id)
	}
	return nil
}

// ValidateMaxMessageLength validates the error message cap
func (v *Validator) ValidateMaxMessageLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("errors.max_message_length must be positive, got %d", n)
	}
	return nil
}

// ValidateLogLevel validates log level
func (v *Validator) ValidateLogLevel(level string) error {
	for _, valid := range validLogLevels {
		if strings.EqualFold(level, valid) {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (must be one of: %s)", level, strings.Join(validLogLevels, ", "))
}

// ValidateConfig performs comprehensive validation
func (v *Validator) ValidateConfig(cfg *Config) []error {
	var errors []error

	if err := v.ValidateActions(cfg.Actions); err != nil {
		errors = append(errors, err)
	}
	if unknown := v.UnknownActions(cfg.Actions); len(unknown) > 0 {
		errors = append(errors, fmt.Errorf("unknown actions: %s", strings.Join(unknown, ", ")))
	}

	if err := v.ValidateMerchantID(cfg.Context.MerchantID); err != nil {
		errors = append(errors, err)
	}

	if err := v.ValidateMaxMessageLength(cfg.Errors.MaxMessageLength); err != nil {
		errors = append(errors, err)
	}

	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		errors = append(errors, err)
	}
	if cfg.Logging.MaxSize < 0 {
		errors = append(errors, fmt.Errorf("logging.max_size must be >= 0"))
	}
	if cfg.Logging.MaxAge < 0 {
		errors = append(errors, fmt.Errorf("logging.max_age must be >= 0"))
	}

	return errors
}
