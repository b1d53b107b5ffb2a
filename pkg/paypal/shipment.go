package paypal

import (
	"context"
	"net/http"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const trackersPath = "/v1/shipping/trackers"

// ShipmentStatuses are the tracker statuses accepted by the API.
var ShipmentStatuses = []string{"SHIPPED", "ON_HOLD", "DELIVERED", "CANCELLED"}

type CreateShipmentParams struct {
	OrderID        string `json:"orderId,omitempty"`
	TransactionID  string `json:"transactionId,omitempty"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	Carrier        string `json:"carrier"`
}

type GetShipmentParams struct {
	OrderID       string `json:"orderId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

type UpdateShipmentParams struct {
	TransactionID     string `json:"transactionId"`
	TrackingNumber    string `json:"trackingNumber"`
	NewTrackingNumber string `json:"newTrackingNumber,omitempty"`
	Status            string `json:"status"`
	Carrier           string `json:"carrier,omitempty"`
}

type tracker struct {
	TransactionID  string `json:"transaction_id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Carrier        string `json:"carrier,omitempty"`
}

// resolveTransaction returns the explicit transaction id or the first
// capture of the order.
func (c *Client) resolveTransaction(ctx context.Context, orderID, transactionID string) (string, error) {
	if transactionID != "" {
		return transactionID, nil
	}
	if orderID == "" {
		return "", &payload.ParseError{Message: "Either orderId or transactionId is required", Err: ErrNotFound}
	}
	return c.captureID(ctx, orderID)
}

// CreateShipmentTracking adds tracking information to a captured order.
func (c *Client) CreateShipmentTracking(ctx context.Context, p CreateShipmentParams) (interface{}, error) {
	txn, err := c.resolveTransaction(ctx, p.OrderID, p.TransactionID)
	if err != nil {
		return nil, err
	}

	body := map[string][]tracker{
		"trackers": {{
			TransactionID:  txn,
			TrackingNumber: p.TrackingNumber,
			Status:         p.Status,
			Carrier:        p.Carrier,
		}},
	}
	return c.post(ctx, trackersPath+"-batch", body)
}

// GetShipmentTracking returns the trackers of a transaction.
func (c *Client) GetShipmentTracking(ctx context.Context, p GetShipmentParams) (interface{}, error) {
	txn, err := c.resolveTransaction(ctx, p.OrderID, p.TransactionID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, withQuery(trackersPath, payload.Query(payload.P("transaction_id", txn))))
}

// UpdateShipmentTracking replaces a tracker's status, carrier or number.
func (c *Client) UpdateShipmentTracking(ctx context.Context, p UpdateShipmentParams) (interface{}, error) {
	number := p.TrackingNumber
	if p.NewTrackingNumber != "" {
		number = p.NewTrackingNumber
	}

	body := tracker{
		TransactionID:  p.TransactionID,
		TrackingNumber: number,
		Status:         p.Status,
		Carrier:        p.Carrier,
	}
	return c.call(ctx, http.MethodPut, trackersPath+"/"+escape(p.TransactionID+"-"+p.TrackingNumber), body)
}
