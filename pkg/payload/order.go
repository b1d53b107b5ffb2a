package payload

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order as a model describes it.
type OrderItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ItemCost    float64 `json:"itemCost"`
	TaxPercent  float64 `json:"taxPercent"`
	Quantity    int     `json:"quantity"`
}

// ShippingAddress is the user-shaped shipping address.
type ShippingAddress struct {
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AdminArea1   string `json:"adminArea1,omitempty"`
	AdminArea2   string `json:"adminArea2,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	CountryCode  string `json:"countryCode"`
}

// OrderDetails are the validated parameters of an order.
type OrderDetails struct {
	CurrencyCode    string           `json:"currencyCode"`
	Items           []OrderItem      `json:"items"`
	ShippingCost    float64          `json:"shippingCost,omitempty"`
	Discount        float64          `json:"discount,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	ReturnURL       string           `json:"returnUrl,omitempty"`
	CancelURL       string           `json:"cancelUrl,omitempty"`
}

// OrderRequest is the Orders v2 create body.
type OrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
	PaymentSource *PaymentSource `json:"payment_source,omitempty"`
}

type PurchaseUnit struct {
	Amount   Amount     `json:"amount"`
	Items    []LineItem `json:"items"`
	Shipping *Shipping  `json:"shipping,omitempty"`
}

type Amount struct {
	CurrencyCode string    `json:"currency_code"`
	Value        string    `json:"value"`
	Breakdown    Breakdown `json:"breakdown"`
}

type Breakdown struct {
	ItemTotal Money `json:"item_total"`
	Shipping  Money `json:"shipping"`
	TaxTotal  Money `json:"tax_total"`
	Discount  Money `json:"discount"`
}

type LineItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UnitAmount  Money  `json:"unit_amount"`
	Quantity    string `json:"quantity"`
	Tax         Money  `json:"tax"`
}

type Shipping struct {
	Address Address `json:"address"`
}

// Address is the wire shape of a postal address.
type Address struct {
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	AdminArea1   string `json:"admin_area_1,omitempty"`
	AdminArea2   string `json:"admin_area_2,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	CountryCode  string `json:"country_code"`
}

type PaymentSource struct {
	PayPal PayPalSource `json:"paypal"`
}

type PayPalSource struct {
	ExperienceContext ExperienceContext `json:"experience_context"`
}

type ExperienceContext struct {
	ReturnURL string `json:"return_url,omitempty"`
	CancelURL string `json:"cancel_url,omitempty"`
}

// OrderTotals are the aggregate amounts of an order before rendering.
type OrderTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums an order:
//
//	subtotal = sum(itemCost * quantity)
//	tax      = sum(itemCost * taxPercent * quantity / 100)
//	total    = subtotal + tax + shipping - discount
func ComputeTotals(d OrderDetails) OrderTotals {
	subtotal := decimal.Zero
	tax := decimal.Zero

	for _, item := range d.Items {
		cost := decimal.NewFromFloat(item.ItemCost)
		qty := decimal.NewFromInt(int64(item.Quantity))

		subtotal = subtotal.Add(cost.Mul(qty))
		tax = tax.Add(cost.Mul(decimal.NewFromFloat(item.TaxPercent)).Mul(qty).Div(hundred))
	}

	shipping := decimal.NewFromFloat(d.ShippingCost)
	discount := decimal.NewFromFloat(d.Discount)

	return OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}

// ItemTax is the tax of ONE unit of the item, rounded to cents. Quantity is
// applied only in the aggregate tax total.
func ItemTax(item OrderItem) decimal.Decimal {
	return decimal.NewFromFloat(item.ItemCost).
		Mul(decimal.NewFromFloat(item.TaxPercent)).
		Div(hundred).
		Round(2)
}

// BuildOrder converts order details into an Orders v2 create body with
// intent CAPTURE. Every failure is a *ParseError carrying MsgOrderParse.
func BuildOrder(d OrderDetails) (*OrderRequest, error) {
	if err := checkOrder(d); err != nil {
		return nil, &ParseError{Message: MsgOrderParse, Err: err}
	}

	currency := d.CurrencyCode
	totals := ComputeTotals(d)

	items := make([]LineItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, LineItem{
			Name:        item.Name,
			Description: item.Description,
			UnitAmount:  NewMoney(currency, decimal.NewFromFloat(item.ItemCost)),
			Quantity:    strconv.Itoa(item.Quantity),
			Tax:         NewMoney(currency, ItemTax(item)),
		})
	}

	unit := PurchaseUnit{
		Amount: Amount{
			CurrencyCode: currency,
			Value:        FormatAmount(totals.Total),
			Breakdown: Breakdown{
				ItemTotal: NewMoney(currency, totals.Subtotal),
				Shipping:  NewMoney(currency, totals.Shipping),
				TaxTotal:  NewMoney(currency, totals.Tax),
				Discount:  NewMoney(currency, totals.Discount),
			},
		},
		Items: items,
	}

	if a := d.ShippingAddress; a != nil {
		unit.Shipping = &Shipping{Address: Address{
			AddressLine1: a.AddressLine1,
			AddressLine2: a.AddressLine2,
			AdminArea1:   a.AdminArea1,
			AdminArea2:   a.AdminArea2,
			PostalCode:   a.PostalCode,
			CountryCode:  a.CountryCode,
		}}
	}

	req := &OrderRequest{
		Intent:        "CAPTURE",
		PurchaseUnits: []PurchaseUnit{unit},
	}

	if d.ReturnURL != "" || d.CancelURL != "" {
		req.PaymentSource = &PaymentSource{PayPal: PayPalSource{
			ExperienceContext: ExperienceContext{ReturnURL: d.ReturnURL, CancelURL: d.CancelURL},
		}}
	}

	return req, nil
}

func checkOrder(d OrderDetails) error {
	if d.CurrencyCode == "" {
		return errors.New("currency code is required")
	}
	if len(d.Items) == 0 {
		return errors.New("at least one item is required")
	}
	for i, item := range d.Items {
		switch {
		case item.Name == "":
			return fmt.Errorf("item %d: name is required", i)
		case item.Quantity < 1:
			return fmt.Errorf("item %d: quantity must be at least 1", i)
		case item.ItemCost < 0:
			return fmt.Errorf("item %d: item cost cannot be negative", i)
		case item.TaxPercent < 0:
			return fmt.Errorf("item %d: tax percent cannot be negative", i)
		}
	}
	if d.ShippingCost < 0 || d.Discount < 0 {
		return errors.New("shipping cost and discount cannot be negative")
	}
	return nil
}
