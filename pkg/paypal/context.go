package paypal

// ExecutionContext holds the ambient values threaded through every call. It is
// owned by one toolkit instance and read-only afterwards.
type ExecutionContext struct {
	// Sandbox selects sandbox wording and behaviour. Nil means sandbox.
	Sandbox *bool `json:"sandbox,omitempty"`

	MerchantID string `json:"merchant_id,omitempty"`
	// RequestID, when set, is sent as PayPal-Request-Id on every write.
	// Otherwise a fresh UUID is generated per request.
	RequestID string `json:"request_id,omitempty"`
	// TenantContext is passed through to the transport untouched.
	TenantContext interface{} `json:"tenant_context,omitempty"`
	// AccessToken short-circuits token acquisition when set.
	AccessToken string `json:"-"`
	// Source names the framework adapter calling the toolkit. Telemetry only.
	Source string `json:"source,omitempty"`
	Debug  bool   `json:"debug,omitempty"`

	// Extra carries passthrough values the toolkit does not interpret.
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// IsSandbox reports whether calls target the sandbox environment.
func (c ExecutionContext) IsSandbox() bool {
	return c.Sandbox == nil || *c.Sandbox
}

// Environment returns "sandbox" or "live".
func (c ExecutionContext) Environment() string {
	if c.IsSandbox() {
		return "sandbox"
	}
	return "live"
}

// Bool returns a pointer to b, for ExecutionContext.Sandbox.
func Bool(b bool) *bool {
	return &b
}
