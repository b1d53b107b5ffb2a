package paypal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingCredentials is returned when no access token can be obtained.
	ErrMissingCredentials = errors.New("paypal credentials are not configured")

	// ErrNotFound is returned when a lookup inside a response finds nothing.
	ErrNotFound = errors.New("not found")
)

// ErrorDetail is one entry of a structured API error.
type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Value       string `json:"value,omitempty"`
	Location    string `json:"location,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Description string `json:"description,omitempty"`
}

// APIError is a structured rejection from the PayPal API.
type APIError struct {
	StatusCode int           `json:"-"`
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	DebugID    string        `json:"debug_id,omitempty"`
	Details    []ErrorDetail `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("paypal %s (%d): %s", e.Name, e.StatusCode, e.Message)
	if len(e.Details) > 0 {
		issues := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			issues = append(issues, strings.TrimSpace(d.Issue+" "+d.Description))
		}
		msg += " [" + strings.Join(issues, "; ") + "]"
	}
	return msg
}

// HTTPStatus returns the response status code.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// HTTPError is a non-2xx response whose body is not a structured API error.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("paypal request failed with status %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the response status code.
func (e *HTTPError) HTTPStatus() int {
	return e.StatusCode
}

// TransportError means no response was received for a request.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// oauthError is the body shape of identity endpoint failures.
type oauthError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// classifyResponse turns a non-2xx response into *APIError when the body is a
// structured error and *HTTPError otherwise.
func classifyResponse(resp *Response) error {
	var apiErr APIError
	if err := json.Unmarshal(resp.Body, &apiErr); err == nil && apiErr.Name != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	var oauth oauthError
	if err := json.Unmarshal(resp.Body, &oauth); err == nil && oauth.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Name:       oauth.Error,
			Message:    oauth.ErrorDescription,
		}
	}

	return &HTTPError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
}
