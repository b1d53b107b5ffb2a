package paypal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const (
	transactionsPath = "/v1/reporting/transactions"

	// searchWindow is the widest date range the reporting API accepts.
	searchWindow = 31 * 24 * time.Hour

	// MaxSearchMonths caps how many windows one transaction lookup walks back.
	MaxSearchMonths = 36
)

type ListTransactionsParams struct {
	TransactionID     string `json:"transactionId,omitempty"`
	TransactionStatus string `json:"transactionStatus"`
	StartDate         string `json:"startDate,omitempty"`
	EndDate           string `json:"endDate,omitempty"`
	SearchMonths      int    `json:"searchMonths"`
	PageSize          int    `json:"pageSize"`
	Page              int    `json:"page"`
}

// TransactionStatuses are the status codes accepted by the reporting API.
var TransactionStatuses = []string{"D", "P", "S", "V"}

// ListTransactions searches transactions. Explicit dates are used as given;
// otherwise the last 31 days are searched, and when a transaction id is
// given the search walks back one window at a time until it is found or
// SearchMonths windows have been tried.
func (c *Client) ListTransactions(ctx context.Context, p ListTransactionsParams) (interface{}, error) {
	if p.StartDate != "" || p.EndDate != "" {
		end := c.now().UTC()
		if p.EndDate != "" {
			t, err := parseDate(p.EndDate)
			if err != nil {
				return nil, err
			}
			end = t
		}
		start := end.Add(-searchWindow)
		if p.StartDate != "" {
			t, err := parseDate(p.StartDate)
			if err != nil {
				return nil, err
			}
			start = t
		}
		return c.get(ctx, transactionsQuery(p, start, end))
	}

	end := c.now().UTC()
	if p.TransactionID == "" {
		return c.get(ctx, transactionsQuery(p, end.Add(-searchWindow), end))
	}

	windows := p.SearchMonths
	if windows < 1 {
		windows = 1
	}
	if windows > MaxSearchMonths {
		windows = MaxSearchMonths
	}
	for i := 0; i < windows; i++ {
		start := end.Add(-searchWindow)
		raw, err := c.send(ctx, http.MethodGet, transactionsQuery(p, start, end), nil)
		if err != nil {
			return nil, err
		}
		if gjson.GetBytes(raw, "transaction_details.#").Int() > 0 {
			return decodeBody(raw), nil
		}
		end = start
	}

	return nil, fmt.Errorf("transaction %s in the last %d months: %w", p.TransactionID, windows, ErrNotFound)
}

func transactionsQuery(p ListTransactionsParams, start, end time.Time) string {
	var id interface{}
	if p.TransactionID != "" {
		id = p.TransactionID
	}

	query := payload.Query(
		payload.P("transaction_id", id),
		payload.P("transaction_status", p.TransactionStatus),
		payload.P("start_date", start.Format(time.RFC3339)),
		payload.P("end_date", end.Format(time.RFC3339)),
		payload.P("page_size", p.PageSize),
		payload.P("page", p.Page),
		payload.P("fields", "all"),
	)
	return withQuery(transactionsPath, query)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &payload.ParseError{
		Message: fmt.Sprintf("Invalid date %q, expected RFC3339 or YYYY-MM-DD", s),
		Err:     fmt.Errorf("parse date %q", s),
	}
}
