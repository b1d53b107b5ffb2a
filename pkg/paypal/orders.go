package paypal

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const ordersPath = "/v2/checkout/orders"

type OrderIDParams struct {
	OrderID string `json:"orderId"`
}

// CreateOrder builds an Orders v2 body from item level pricing and creates
// the order.
func (c *Client) CreateOrder(ctx context.Context, p payload.OrderDetails) (interface{}, error) {
	req, err := payload.BuildOrder(p)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, ordersPath, req)
}

// GetOrder returns one order.
func (c *Client) GetOrder(ctx context.Context, p OrderIDParams) (interface{}, error) {
	return c.get(ctx, ordersPath+"/"+escape(p.OrderID))
}

// PayOrder captures an approved order.
func (c *Client) PayOrder(ctx context.Context, p OrderIDParams) (interface{}, error) {
	return c.post(ctx, ordersPath+"/"+escape(p.OrderID)+"/capture", nil)
}

// captureID returns the first capture of an order.
func (c *Client) captureID(ctx context.Context, orderID string) (string, error) {
	raw, err := c.send(ctx, http.MethodGet, ordersPath+"/"+escape(orderID), nil)
	if err != nil {
		return "", err
	}

	id := gjson.GetBytes(raw, "purchase_units.0.payments.captures.0.id")
	if !id.Exists() || id.String() == "" {
		return "", fmt.Errorf("capture for order %s: %w", orderID, ErrNotFound)
	}
	return id.String(), nil
}
