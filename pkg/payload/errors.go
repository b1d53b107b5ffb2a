package payload

import "errors"

var (
	// ErrUnknownUpdateField is returned when a subscription update names a
	// field with no patch path.
	ErrUnknownUpdateField = errors.New("unknown subscription update field")

	// ErrInvalidUpdateValue is returned when an update value has the wrong shape.
	ErrInvalidUpdateValue = errors.New("invalid subscription update value")
)

// MsgOrderParse is the caller-visible message of every order transform failure.
const MsgOrderParse = "Failed to parse order details"

// ParseError is a transform failure whose message is safe to show to a model.
// The underlying cause stays available through Unwrap for diagnostics.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
