package toolkit

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
	"github.com/harun/paypal-agent-toolkit/pkg/paypal"
	"github.com/harun/paypal-agent-toolkit/pkg/schema"
)

const unknownError = "Unknown error"

// ErrMethodNotFound is returned for a tool name outside the enabled tool set.
var ErrMethodNotFound = errors.New("method not found")

type httpStatuser interface {
	HTTPStatus() int
}

// classify maps err to an envelope. Structured API rejections are domain
// errors, unstructured non-2xx responses are system errors, everything else is
// a tool error.
func (t *Toolkit) classify(err error) Envelope {
	var (
		apiErr       *paypal.APIError
		httpErr      *paypal.HTTPError
		validation   *schema.ValidationError
		parseErr     *payload.ParseError
		transportErr *paypal.TransportError
	)

	switch {
	case errors.As(err, &apiErr):
		detail := ErrorDetail{
			Category: CategoryDomain,
			Type:     apiErr.Name,
			Message:  t.redact(apiErr.Message),
			Status:   apiErr.StatusCode,
			DebugID:  apiErr.DebugID,
		}
		if detail.Message == "" {
			detail.Message = apiErr.Name
		}
		for _, d := range apiErr.Details {
			issue := strings.TrimSpace(strings.Join([]string{d.Field, d.Issue, d.Description}, " "))
			if issue != "" {
				detail.Issues = append(detail.Issues, t.clip(issue))
			}
		}
		return failure(KindDomainError, detail)

	case errors.As(err, &httpErr):
		return failure(KindSystemError, ErrorDetail{
			Category: CategorySystem,
			Message:  t.clip(orDefault(httpErr.Body, http.StatusText(httpErr.StatusCode))),
			Status:   httpErr.StatusCode,
		})

	case errors.As(err, &validation):
		return t.toolError(CategoryValidation, CodeValidation, validation.Error(), http.StatusBadRequest)

	case errors.Is(err, ErrMethodNotFound):
		return t.toolError(CategoryConfiguration, CodeMethodNotFound, err.Error(), http.StatusNotFound)

	case errors.Is(err, paypal.ErrMissingCredentials), errors.Is(err, paypal.ErrNoTransport):
		return t.toolError(CategoryConfiguration, CodeConfiguration, err.Error(), http.StatusUnauthorized)

	case errors.As(err, &parseErr):
		return t.toolError(CategoryValidation, CodeInvalidRequest, parseErr.Message, http.StatusBadRequest)

	case errors.Is(err, payload.ErrUnknownUpdateField), errors.Is(err, payload.ErrInvalidUpdateValue):
		return t.toolError(CategoryValidation, CodeInvalidRequest, err.Error(), http.StatusBadRequest)

	case errors.Is(err, paypal.ErrNotFound):
		return t.toolError(CategoryInternal, CodeNotFound, err.Error(), http.StatusNotFound)

	case errors.As(err, &transportErr):
		return t.toolError(CategorySystem, CodeTransport, err.Error(), statusOf(err))

	default:
		msg := unknownError
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		return t.toolError(CategoryInternal, CodeInternal, msg, statusOf(err))
	}
}

func (t *Toolkit) toolError(category Category, code, msg string, status int) Envelope {
	return failure(KindToolError, ErrorDetail{
		Category: category,
		Code:     code,
		Message:  t.clip(orDefault(msg, unknownError)),
		Status:   status,
	})
}

// statusOf returns the HTTP status embedded in err, or 0.
func statusOf(err error) int {
	var s httpStatuser
	if errors.As(err, &s) {
		return s.HTTPStatus()
	}
	return 0
}

func (t *Toolkit) redact(s string) string {
	if t.redactor == nil {
		return s
	}
	return t.redactor.Redact(s)
}

// clip redacts s and caps it at maxErrorLength characters.
func (t *Toolkit) clip(s string) string {
	return truncate(t.redact(s), t.maxErrorLength)
}

func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	if max <= len(ellipsis) {
		return string(runes[:max])
	}
	return string(runes[:max-len(ellipsis)]) + ellipsis
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
