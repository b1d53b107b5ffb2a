package toolkit

// Kind tags the variant of an Envelope.
type Kind string

const (
	KindSuccess     Kind = "success"
	KindDomainError Kind = "domain_error"
	KindSystemError Kind = "system_error"
	KindToolError   Kind = "tool_error"
)

// Category groups failures for callers deciding whether to retry.
type Category string

const (
	CategoryDomain        Category = "domain"
	CategorySystem        Category = "system"
	CategoryValidation    Category = "validation"
	CategoryConfiguration Category = "configuration"
	CategoryInternal      Category = "internal"
)

// Tool error codes.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeMethodNotFound = "METHOD_NOT_FOUND"
	CodeConfiguration  = "CONFIGURATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeTransport      = "TRANSPORT_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
	CodeSerialization  = "SERIALIZATION_ERROR"
)

// Envelope is the result of one dispatch. Exactly one of Data or Error is
// meaningful, selected by Kind.
type Envelope struct {
	Kind  Kind         `json:"kind"`
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed dispatch.
type ErrorDetail struct {
	Category Category `json:"category"`
	// Code is set on tool errors.
	Code string `json:"code,omitempty"`
	// Type is the PayPal error name of a domain error.
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	DebugID string `json:"debugId,omitempty"`
	// Issues lists the API's per-field details of a domain error.
	Issues []string `json:"issues,omitempty"`
}

// OK reports whether the envelope is a success.
func (e Envelope) OK() bool {
	return e.Kind == KindSuccess
}

func success(data interface{}) Envelope {
	return Envelope{Kind: KindSuccess, Data: data}
}

func failure(kind Kind, detail ErrorDetail) Envelope {
	return Envelope{Kind: kind, Error: &detail}
}
