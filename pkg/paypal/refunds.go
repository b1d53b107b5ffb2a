package paypal

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

type CreateRefundParams struct {
	CaptureID    string  `json:"captureId"`
	Amount       float64 `json:"amount,omitempty"`
	CurrencyCode string  `json:"currencyCode,omitempty"`
	InvoiceID    string  `json:"invoiceId,omitempty"`
	NoteToPayer  string  `json:"noteToPayer,omitempty"`
}

type RefundIDParams struct {
	RefundID string `json:"refundId"`
}

type refundRequest struct {
	Amount      *payload.Money `json:"amount,omitempty"`
	InvoiceID   string         `json:"invoice_id,omitempty"`
	NoteToPayer string         `json:"note_to_payer,omitempty"`
}

// CreateRefund refunds a capture, fully when no amount is given.
func (c *Client) CreateRefund(ctx context.Context, p CreateRefundParams) (interface{}, error) {
	body := refundRequest{InvoiceID: p.InvoiceID, NoteToPayer: p.NoteToPayer}

	if p.Amount > 0 {
		if p.CurrencyCode == "" {
			return nil, &payload.ParseError{
				Message: "A currency code is required for partial refunds",
				Err:     errors.New("amount given without currency code"),
			}
		}
		m := payload.NewMoney(p.CurrencyCode, decimal.NewFromFloat(p.Amount))
		body.Amount = &m
	}

	return c.post(ctx, "/v2/payments/captures/"+escape(p.CaptureID)+"/refund", body)
}

// GetRefund returns one refund.
func (c *Client) GetRefund(ctx context.Context, p RefundIDParams) (interface{}, error) {
	return c.get(ctx, "/v2/payments/refunds/"+escape(p.RefundID))
}
