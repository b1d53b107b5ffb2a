package paypal

import (
	"context"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const (
	subscriptionsPath = "/v1/billing/subscriptions"

	defaultCurrency = "USD"
)

type CreateSubscriptionParams struct {
	PlanID             string                 `json:"planId"`
	Quantity           string                 `json:"quantity,omitempty"`
	CustomID           string                 `json:"customId,omitempty"`
	Subscriber         map[string]interface{} `json:"subscriber,omitempty"`
	ApplicationContext map[string]interface{} `json:"applicationContext,omitempty"`
}

type SubscriptionIDParams struct {
	SubscriptionID string `json:"subscriptionId"`
}

type CancelSubscriptionParams struct {
	SubscriptionID string `json:"subscriptionId"`
	Reason         string `json:"reason"`
}

type UpdateSubscriptionParams struct {
	SubscriptionID string          `json:"subscriptionId"`
	CurrencyCode   string          `json:"currencyCode,omitempty"`
	Updates        payload.Updates `json:"updates"`
}

// CreateSubscription subscribes a customer to a plan.
func (c *Client) CreateSubscription(ctx context.Context, p CreateSubscriptionParams) (interface{}, error) {
	body := map[string]interface{}{"planId": p.PlanID}
	if p.Quantity != "" {
		body["quantity"] = p.Quantity
	}
	if p.CustomID != "" {
		body["customId"] = p.CustomID
	}
	if p.Subscriber != nil {
		body["subscriber"] = p.Subscriber
	}
	if p.ApplicationContext != nil {
		body["applicationContext"] = p.ApplicationContext
	}

	return c.post(ctx, subscriptionsPath, payload.ToSnakeCaseKeys(body))
}

// ShowSubscriptionDetails returns one subscription.
func (c *Client) ShowSubscriptionDetails(ctx context.Context, p SubscriptionIDParams) (interface{}, error) {
	return c.get(ctx, subscriptionsPath+"/"+escape(p.SubscriptionID))
}

// CancelSubscription cancels a subscription with a reason.
func (c *Client) CancelSubscription(ctx context.Context, p CancelSubscriptionParams) (interface{}, error) {
	body := map[string]string{"reason": p.Reason}
	return c.post(ctx, subscriptionsPath+"/"+escape(p.SubscriptionID)+"/cancel", body)
}

// UpdateSubscription reads the current subscription, derives patch
// operations for the requested updates and applies them.
func (c *Client) UpdateSubscription(ctx context.Context, p UpdateSubscriptionParams) (interface{}, error) {
	if len(p.Updates) == 0 {
		return nil, &payload.ParseError{
			Message: "No subscription fields to update",
			Err:     errors.New("updates is empty"),
		}
	}

	path := subscriptionsPath + "/" + escape(p.SubscriptionID)

	current, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	ops, err := payload.SubscriptionPatch(p.Updates, current, subscriptionCurrency(p.CurrencyCode, current))
	if err != nil {
		return nil, err
	}

	if _, err := c.send(ctx, http.MethodPatch, path, ops); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"subscriptionId": p.SubscriptionID,
		"operations":     ops,
		"status":         "updated",
	}, nil
}

// subscriptionCurrency picks the currency for money updates: the explicit one,
// then whatever the subscription already bills in.
func subscriptionCurrency(explicit string, current []byte) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{
		"billing_info.last_payment.amount.currency_code",
		"billing_info.outstanding_balance.currency_code",
		"shipping_amount.currency_code",
	} {
		if v := gjson.GetBytes(current, path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return defaultCurrency
}
