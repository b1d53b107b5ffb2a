package paypal

import (
	"context"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const plansPath = "/v1/billing/plans"

// CreatePlanParams mirrors the Subscriptions v1 plan body in camelCase.
type CreatePlanParams struct {
	ProductID          string                 `json:"productId"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description,omitempty"`
	Status             string                 `json:"status,omitempty"`
	BillingCycles      []interface{}          `json:"billingCycles"`
	PaymentPreferences map[string]interface{} `json:"paymentPreferences"`
	Taxes              map[string]interface{} `json:"taxes,omitempty"`
}

type ListPlansParams struct {
	ProductID string `json:"productId,omitempty"`
	ListParams
}

type PlanIDParams struct {
	PlanID string `json:"planId"`
}

// CreateSubscriptionPlan creates a billing plan for a product.
func (c *Client) CreateSubscriptionPlan(ctx context.Context, p CreatePlanParams) (interface{}, error) {
	body := map[string]interface{}{
		"productId":          p.ProductID,
		"name":               p.Name,
		"billingCycles":      p.BillingCycles,
		"paymentPreferences": p.PaymentPreferences,
	}
	if p.Description != "" {
		body["description"] = p.Description
	}
	if p.Status != "" {
		body["status"] = p.Status
	}
	if p.Taxes != nil {
		body["taxes"] = p.Taxes
	}

	return c.post(ctx, plansPath, payload.ToSnakeCaseKeys(body))
}

// ListSubscriptionPlans lists plans, optionally for one product.
func (c *Client) ListSubscriptionPlans(ctx context.Context, p ListPlansParams) (interface{}, error) {
	var productID interface{}
	if p.ProductID != "" {
		productID = p.ProductID
	}

	query := payload.Query(
		payload.P("product_id", productID),
		payload.P("page", p.Page),
		payload.P("page_size", p.PageSize),
		payload.P("total_required", p.TotalRequired),
	)
	return c.get(ctx, withQuery(plansPath, query))
}

// ShowSubscriptionPlanDetails returns one plan.
func (c *Client) ShowSubscriptionPlanDetails(ctx context.Context, p PlanIDParams) (interface{}, error) {
	return c.get(ctx, plansPath+"/"+escape(p.PlanID))
}
