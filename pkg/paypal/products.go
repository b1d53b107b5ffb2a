package paypal

import (
	"context"
	"net/http"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
)

const productsPath = "/v1/catalogs/products"

type CreateProductParams struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	HomeURL     string `json:"homeUrl,omitempty"`
}

type ProductIDParams struct {
	ProductID string `json:"productId"`
}

type UpdateProductParams struct {
	ProductID  string                   `json:"productId"`
	Operations []payload.PatchOperation `json:"operations"`
}

// CreateProduct adds a product to the catalog.
func (c *Client) CreateProduct(ctx context.Context, p CreateProductParams) (interface{}, error) {
	body := map[string]interface{}{
		"name": p.Name,
		"type": p.Type,
	}
	optional := map[string]string{
		"description": p.Description,
		"category":    p.Category,
		"imageUrl":    p.ImageURL,
		"homeUrl":     p.HomeURL,
	}
	for k, v := range optional {
		if v != "" {
			body[k] = v
		}
	}

	return c.post(ctx, productsPath, payload.ToSnakeCaseKeys(body))
}

// ListProducts lists catalog products.
func (c *Client) ListProducts(ctx context.Context, p ListParams) (interface{}, error) {
	query := payload.Query(
		payload.P("page", p.Page),
		payload.P("page_size", p.PageSize),
		payload.P("total_required", p.TotalRequired),
	)
	return c.get(ctx, withQuery(productsPath, query))
}

// ShowProductDetails returns one product.
func (c *Client) ShowProductDetails(ctx context.Context, p ProductIDParams) (interface{}, error) {
	return c.get(ctx, productsPath+"/"+escape(p.ProductID))
}

// UpdateProduct applies patch operations to a product.
func (c *Client) UpdateProduct(ctx context.Context, p UpdateProductParams) (interface{}, error) {
	if _, err := c.send(ctx, http.MethodPatch, productsPath+"/"+escape(p.ProductID), p.Operations); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"productId":  p.ProductID,
		"operations": p.Operations,
		"status":     "updated",
	}, nil
}
