package paypal

import "context"

// Transport performs the actual HTTP exchange with the PayPal API. It owns the
// base URL, OAuth credentials and timeouts.
type Transport interface {
	// AccessToken returns a bearer token for the API.
	AccessToken(ctx context.Context) (string, error)
	// Send executes one request. A non-nil error means no response was
	// received; HTTP error statuses are reported through Response.
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Request is one API call. Path is relative to the API base URL and may carry
// a query string.
type Request struct {
	Method  string
	Path    string
	Body    []byte
	Headers map[string]string

	// MerchantID and Tenant are forwarded for transports that act on behalf
	// of a merchant or route by tenant.
	MerchantID string
	Tenant     interface{}
}

// Response is the raw outcome of a Request.
type Response struct {
	StatusCode int
	Body       []byte
}
