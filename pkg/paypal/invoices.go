package paypal

import (
	"context"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const invoicesPath = "/v2/invoicing/invoices"

// CreateInvoiceParams mirrors the Invoicing v2 create body in camelCase.
type CreateInvoiceParams struct {
	Detail            map[string]interface{} `json:"detail"`
	Invoicer          map[string]interface{} `json:"invoicer,omitempty"`
	PrimaryRecipients []interface{}          `json:"primaryRecipients,omitempty"`
	Items             []interface{}          `json:"items,omitempty"`
	Configuration     map[string]interface{} `json:"configuration,omitempty"`
}

// ListParams is the paging shared by list operations.
type ListParams struct {
	Page          int  `json:"page"`
	PageSize      int  `json:"pageSize"`
	TotalRequired bool `json:"totalRequired"`
}

type InvoiceIDParams struct {
	InvoiceID string `json:"invoiceId"`
}

type SendInvoiceParams struct {
	InvoiceID            string   `json:"invoiceId"`
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       bool     `json:"sendToInvoicer"`
	SendToRecipient      bool     `json:"sendToRecipient"`
	AdditionalRecipients []string `json:"additionalRecipients,omitempty"`
}

type InvoiceReminderParams struct {
	InvoiceID            string   `json:"invoiceId"`
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	AdditionalRecipients []string `json:"additionalRecipients,omitempty"`
}

type InvoiceQRCodeParams struct {
	InvoiceID string `json:"invoiceId"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type notification struct {
	Subject              string   `json:"subject,omitempty"`
	Note                 string   `json:"note,omitempty"`
	SendToInvoicer       *bool    `json:"send_to_invoicer,omitempty"`
	SendToRecipient      *bool    `json:"send_to_recipient,omitempty"`
	AdditionalRecipients []string `json:"additional_recipients,omitempty"`
}

// CreateInvoice creates a draft invoice.
func (c *Client) CreateInvoice(ctx context.Context, p CreateInvoiceParams) (interface{}, error) {
	body := map[string]interface{}{"detail": p.Detail}
	if p.Invoicer != nil {
		body["invoicer"] = p.Invoicer
	}
	if len(p.PrimaryRecipients) > 0 {
		body["primaryRecipients"] = p.PrimaryRecipients
	}
	if len(p.Items) > 0 {
		body["items"] = p.Items
	}
	if p.Configuration != nil {
		body["configuration"] = p.Configuration
	}

	return c.post(ctx, invoicesPath, payload.ToSnakeCaseKeys(body))
}

// ListInvoices lists invoices page by page.
func (c *Client) ListInvoices(ctx context.Context, p ListParams) (interface{}, error) {
	query := payload.Query(
		payload.P("page", p.Page),
		payload.P("page_size", p.PageSize),
		payload.P("total_required", p.TotalRequired),
	)
	return c.get(ctx, withQuery(invoicesPath, query))
}

// GetInvoice returns one invoice.
func (c *Client) GetInvoice(ctx context.Context, p InvoiceIDParams) (interface{}, error) {
	return c.get(ctx, invoicesPath+"/"+escape(p.InvoiceID))
}

// SendInvoice sends a draft invoice to its recipients.
func (c *Client) SendInvoice(ctx context.Context, p SendInvoiceParams) (interface{}, error) {
	body := notification{
		Subject:              p.Subject,
		Note:                 p.Note,
		SendToInvoicer:       Bool(p.SendToInvoicer),
		SendToRecipient:      Bool(p.SendToRecipient),
		AdditionalRecipients: p.AdditionalRecipients,
	}
	return c.post(ctx, invoicesPath+"/"+escape(p.InvoiceID)+"/send", body)
}

// SendInvoiceReminder reminds recipients about an unpaid invoice.
func (c *Client) SendInvoiceReminder(ctx context.Context, p InvoiceReminderParams) (interface{}, error) {
	body := notification{
		Subject:              p.Subject,
		Note:                 p.Note,
		AdditionalRecipients: p.AdditionalRecipients,
	}
	return c.post(ctx, invoicesPath+"/"+escape(p.InvoiceID)+"/remind", body)
}

// CancelSentInvoice cancels an invoice that was already sent.
func (c *Client) CancelSentInvoice(ctx context.Context, p SendInvoiceParams) (interface{}, error) {
	body := notification{
		Subject:              p.Subject,
		Note:                 p.Note,
		SendToInvoicer:       Bool(p.SendToInvoicer),
		SendToRecipient:      Bool(p.SendToRecipient),
		AdditionalRecipients: p.AdditionalRecipients,
	}
	return c.post(ctx, invoicesPath+"/"+escape(p.InvoiceID)+"/cancel", body)
}

// GenerateInvoiceQRCode returns a QR code image (base64) for the invoice.
func (c *Client) GenerateInvoiceQRCode(ctx context.Context, p InvoiceQRCodeParams) (interface{}, error) {
	body := map[string]int{"width": p.Width, "height": p.Height}
	return c.post(ctx, invoicesPath+"/"+escape(p.InvoiceID)+"/generate-qr-code", body)
}
