package catalog

import (
	"strings"

	"github.com/harun/paypal-agent-toolkit/pkg/payload"
	"github.com/harun/paypal-agent-toolkit/pkg/paypal"
	"github.com/harun/paypal-agent-toolkit/pkg/permission"
	"github.com/harun/paypal-agent-toolkit/pkg/schema"
)

type definition struct {
	name           string
	human          string
	description    string
	movesMoney     bool
	params         schema.Schema
	actions        permission.Actions
	invalidMessage string
	handler        Handler
}

func grant(product string, actions ...string) permission.Actions {
	set := make(map[string]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return permission.Actions{product: set}
}

// definitions returns the operation table in tool list order.
func definitions() []definition {
	var defs []definition
	defs = append(defs, invoiceDefinitions()...)
	defs = append(defs, productDefinitions()...)
	defs = append(defs, planDefinitions()...)
	defs = append(defs, subscriptionDefinitions()...)
	defs = append(defs, orderDefinitions()...)
	defs = append(defs, refundDefinitions()...)
	defs = append(defs, disputeDefinitions()...)
	defs = append(defs, shipmentDefinitions()...)
	defs = append(defs, transactionDefinitions()...)
	return defs
}

func invoiceDefinitions() []definition {
	recipients := list("additionalRecipients", "Extra email addresses that receive a copy.", str("email", "Email address."))

	return []definition{
		{
			name:        "create_invoice",
			human:       "Create Invoice",
			description: "Create a draft invoice in the PayPal {environment} environment.",
			params: schema.New(
				required(open(object("detail", "Invoice detail.",
					required(str("currencyCode", "Three letter ISO-4217 currency code.")),
					str("invoiceNumber", "Invoice number; generated when omitted."),
					str("invoiceDate", "Invoice date as YYYY-MM-DD."),
					str("note", "Note to the recipient."),
					str("termsAndConditions", "Terms and conditions."),
				))),
				open(object("invoicer", "The merchant issuing the invoice.",
					str("businessName", "Business name."),
					str("emailAddress", "Merchant email address."),
				)),
				list("primaryRecipients", "Who the invoice is billed to.",
					open(object("recipient", "Recipient.",
						open(object("billingInfo", "Billing information.",
							str("emailAddress", "Recipient email address."),
						)),
					)),
				),
				list("items", "Invoice line items.",
					open(object("item", "Line item.",
						required(str("name", "Item name.")),
						str("description", "Item description."),
						required(str("quantity", "Quantity as a string, for example \"2\".")),
						required(money("unitAmount", "Price of one unit.")),
						open(object("tax", "Tax applied to the item.",
							str("name", "Tax name."),
							str("percent", "Tax rate as a percentage string."),
						)),
					)),
				),
				open(object("configuration", "Invoice configuration.",
					boolean("allowTip", "Whether the payer may add a tip."),
					boolean("taxCalculatedAfterDiscount", "Whether tax applies after discounts."),
				)),
			),
			actions: grant("invoices", "create"),
			handler: bind((*paypal.Client).CreateInvoice),
		},
		{
			name:        "list_invoices",
			human:       "List Invoices",
			description: "List invoices with pagination.",
			params:      schema.New(paging()...),
			actions:     grant("invoices", "list"),
			handler:     bind((*paypal.Client).ListInvoices),
		},
		{
			name:        "get_invoice",
			human:       "Get Invoice",
			description: "Retrieve the details of one invoice.",
			params:      schema.New(id("invoiceId", "invoice")),
			actions:     grant("invoices", "get"),
			handler:     bind((*paypal.Client).GetInvoice),
		},
		{
			name:        "send_invoice",
			human:       "Send Invoice",
			description: "Send a draft invoice to its recipients.",
			params: schema.New(
				id("invoiceId", "invoice"),
				str("subject", "Email subject."),
				str("note", "Note to the recipient."),
				withDefault(boolean("sendToInvoicer", "Send a copy to the merchant."), false),
				withDefault(boolean("sendToRecipient", "Send to the recipient."), true),
				recipients,
			),
			actions: grant("invoices", "send"),
			handler: bind((*paypal.Client).SendInvoice),
		},
		{
			name:        "send_invoice_reminder",
			human:       "Send Invoice Reminder",
			description: "Send a payment reminder for an unpaid invoice.",
			params: schema.New(
				id("invoiceId", "invoice"),
				str("subject", "Email subject."),
				str("note", "Note to the recipient."),
				recipients,
			),
			actions: grant("invoices", "sendReminder"),
			handler: bind((*paypal.Client).SendInvoiceReminder),
		},
		{
			name:        "cancel_sent_invoice",
			human:       "Cancel Sent Invoice",
			description: "Cancel an invoice that was already sent.",
			params: schema.New(
				id("invoiceId", "invoice"),
				str("subject", "Email subject."),
				str("note", "Cancellation note."),
				withDefault(boolean("sendToInvoicer", "Notify the merchant."), true),
				withDefault(boolean("sendToRecipient", "Notify the recipient."), true),
				recipients,
			),
			actions: grant("invoices", "cancel"),
			handler: bind((*paypal.Client).CancelSentInvoice),
		},
		{
			name:        "generate_invoice_qr_code",
			human:       "Generate Invoice QR Code",
			description: "Generate a QR code image that opens the invoice payment page.",
			params: schema.New(
				id("invoiceId", "invoice"),
				withDefault(integer("width", "Image width in pixels."), 300),
				withDefault(integer("height", "Image height in pixels."), 300),
			),
			actions: grant("invoices", "generateQRC"),
			handler: bind((*paypal.Client).GenerateInvoiceQRCode),
		},
	}
}

func productDefinitions() []definition {
	return []definition{
		{
			name:        "create_product",
			human:       "Create Product",
			description: "Create a catalog product that subscription plans can bill for.",
			params: schema.New(
				required(str("name", "Product name.")),
				required(str("type", "Product type.", "PHYSICAL", "DIGITAL", "SERVICE")),
				str("description", "Product description."),
				str("category", "Product category, for example SOFTWARE."),
				str("imageUrl", "Image URL."),
				str("homeUrl", "Home page URL."),
			),
			actions: grant("products", "create"),
			handler: bind((*paypal.Client).CreateProduct),
		},
		{
			name:        "list_products",
			human:       "List Products",
			description: "List catalog products with pagination.",
			params:      schema.New(paging()...),
			actions:     grant("products", "list"),
			handler:     bind((*paypal.Client).ListProducts),
		},
		{
			name:        "show_product_details",
			human:       "Show Product Details",
			description: "Retrieve the details of one product.",
			params:      schema.New(id("productId", "product")),
			actions:     grant("products", "show", "update"),
			handler:     bind((*paypal.Client).ShowProductDetails),
		},
		{
			name:        "update_product",
			human:       "Update Product",
			description: "Apply patch operations to a product, for example to replace its description.",
			params: schema.New(
				id("productId", "product"),
				required(list("operations", "Patch operations in application order.",
					object("operation", "One patch operation.",
						required(str("op", "Operation kind.", "add", "replace", "remove")),
						required(str("path", "JSON pointer to the product field, for example /description.")),
						anyValue("value", "New value; omitted for remove."),
					),
				)),
			),
			actions: grant("products", "update"),
			handler: bind((*paypal.Client).UpdateProduct),
		},
	}
}

func planDefinitions() []definition {
	return []definition{
		{
			name:        "create_subscription_plan",
			human:       "Create Subscription Plan",
			description: "Create a billing plan for a product.",
			params: schema.New(
				id("productId", "product the plan bills for"),
				required(str("name", "Plan name.")),
				str("description", "Plan description."),
				withDefault(str("status", "Initial plan status.", "CREATED", "ACTIVE", "INACTIVE"), "ACTIVE"),
				required(list("billingCycles", "Billing cycles; trial cycles come before regular ones.",
					open(object("billingCycle", "One billing cycle.",
						required(object("frequency", "How often the cycle bills.",
							required(str("intervalUnit", "Interval unit.", "DAY", "WEEK", "MONTH", "YEAR")),
							integer("intervalCount", "Number of units per interval."),
						)),
						required(str("tenureType", "Cycle tenure.", "REGULAR", "TRIAL")),
						required(integer("sequence", "Position of the cycle.")),
						integer("totalCycles", "Number of times the cycle runs; 0 means forever."),
						open(object("pricingScheme", "Price of the cycle.",
							money("fixedPrice", "Fixed price per cycle."),
						)),
					)),
				)),
				required(open(object("paymentPreferences", "Payment preferences.",
					boolean("autoBillOutstanding", "Bill the outstanding amount in the next cycle."),
					str("setupFeeFailureAction", "Action when the setup fee fails.", "CONTINUE", "CANCEL"),
					integer("paymentFailureThreshold", "Failed payments before suspension."),
					money("setupFee", "One time setup fee."),
				))),
				object("taxes", "Tax details.",
					required(str("percentage", "Tax percentage as a string.")),
					boolean("inclusive", "Whether the tax is already in the price."),
				),
			),
			actions: grant("subscriptionPlans", "create"),
			handler: bind((*paypal.Client).CreateSubscriptionPlan),
		},
		{
			name:        "list_subscription_plans",
			human:       "List Subscription Plans",
			description: "List billing plans, optionally for one product.",
			params: schema.New(append(
				[]schema.Field{str("productId", "Only list plans of this product.")},
				paging()...,
			)...),
			actions: grant("subscriptionPlans", "list"),
			handler: bind((*paypal.Client).ListSubscriptionPlans),
		},
		{
			name:        "show_subscription_plan_details",
			human:       "Show Subscription Plan Details",
			description: "Retrieve the details of one billing plan.",
			params:      schema.New(id("planId", "plan")),
			actions:     grant("subscriptionPlans", "show"),
			handler:     bind((*paypal.Client).ShowSubscriptionPlanDetails),
		},
	}
}

func subscriptionDefinitions() []definition {
	return []definition{
		{
			name:        "create_subscription",
			human:       "Create Subscription",
			description: "Subscribe a customer to a billing plan.",
			movesMoney:  true,
			params: schema.New(
				id("planId", "plan to subscribe to"),
				str("quantity", "Quantity of the product."),
				str("customId", "Merchant reference for the subscription."),
				open(object("subscriber", "The subscriber.",
					open(object("name", "Subscriber name.",
						str("givenName", "Given name."),
						str("surname", "Surname."),
					)),
					str("emailAddress", "Subscriber email address."),
				)),
				open(object("applicationContext", "Checkout experience settings.",
					str("brandName", "Brand shown on the PayPal pages."),
					str("locale", "Locale, for example en-US."),
					str("shippingPreference", "Shipping preference.", "GET_FROM_FILE", "NO_SHIPPING", "SET_PROVIDED_ADDRESS"),
					str("userAction", "Button label on the approval page.", "CONTINUE", "SUBSCRIBE_NOW"),
					str("returnUrl", "URL after approval."),
					str("cancelUrl", "URL after cancellation."),
				)),
			),
			actions: grant("subscriptions", "create"),
			handler: bind((*paypal.Client).CreateSubscription),
		},
		{
			name:        "show_subscription_details",
			human:       "Show Subscription Details",
			description: "Retrieve the details of one subscription.",
			params:      schema.New(id("subscriptionId", "subscription")),
			actions:     grant("subscriptions", "show"),
			handler:     bind((*paypal.Client).ShowSubscriptionDetails),
		},
		{
			name:  "update_subscription",
			human: "Update Subscription",
			description: "Update fields of an active subscription. Updatable fields: " +
				strings.Join(payload.SubscriptionUpdateFields(), ", ") +
				". Money fields take {value, currencyCode}; fixedPrice also takes the billing cycle sequence.",
			movesMoney: true,
			params: schema.New(
				id("subscriptionId", "subscription"),
				str("currencyCode", "Currency for money fields; defaults to the subscription's currency."),
				required(object("updates", "Field changes, applied in the given order.",
					updateMoney("outstandingBalance", "Outstanding balance to bill."),
					str("customId", "Merchant reference for the subscription."),
					object("fixedPrice", "Fixed price of one billing cycle.",
						withDefault(between(integer("sequence", "Billing cycle sequence."), 1, 99), 1),
						required(str("value", "Amount as a decimal string.")),
						str("currencyCode", "Three letter ISO-4217 currency code."),
					),
					between(integer("paymentFailureThreshold", "Failed payments before the subscription is suspended."), 0, 999),
					boolean("autoBillOutstanding", "Whether the outstanding balance is billed in the next cycle."),
					boolean("taxesInclusive", "Whether the plan price includes tax."),
					str("taxesPercentage", "Tax percentage as a decimal string."),
					updateMoney("shippingAmount", "Shipping charge per cycle."),
					open(object("shippingAddress", "PayPal shipping_address object with name and address.")),
				)),
			),
			actions: grant("subscriptions", "update"),
			handler: bind((*paypal.Client).UpdateSubscription),
		},
		{
			name:        "cancel_subscription",
			human:       "Cancel Subscription",
			description: "Cancel a subscription.",
			params: schema.New(
				id("subscriptionId", "subscription"),
				withDefault(str("reason", "Reason for the cancellation."), "Not satisfied with the service"),
			),
			actions: grant("subscriptions", "cancel"),
			handler: bind((*paypal.Client).CancelSubscription),
		},
	}
}

func orderDefinitions() []definition {
	return []definition{
		{
			name:  "create_order",
			human: "Create Order",
			description: "Create an order from item prices, quantities and tax rates. " +
				"Totals, tax and the breakdown are computed for you.",
			movesMoney: true,
			params: schema.New(
				required(str("currencyCode", "Three letter ISO-4217 currency code.")),
				required(list("items", "Line items.",
					object("item", "One line item.",
						required(str("name", "Item name.")),
						str("description", "Item description."),
						required(num("itemCost", "Price of one unit.")),
						withDefault(num("taxPercent", "Tax rate in percent."), 0),
						required(integer("quantity", "Number of units.")),
					),
				)),
				withDefault(num("shippingCost", "Shipping cost."), 0),
				withDefault(num("discount", "Discount subtracted from the total."), 0),
				object("shippingAddress", "Where the order ships to.",
					str("addressLine1", "Street address."),
					str("addressLine2", "Apartment, suite or unit."),
					str("adminArea1", "State or province."),
					str("adminArea2", "City."),
					str("postalCode", "Postal code."),
					required(str("countryCode", "Two letter country code.")),
				),
				str("returnUrl", "URL after the buyer approves."),
				str("cancelUrl", "URL after the buyer cancels."),
			),
			actions:        grant("orders", "create"),
			invalidMessage: payload.MsgOrderParse,
			handler:        bind((*paypal.Client).CreateOrder),
		},
		{
			name:        "get_order",
			human:       "Get Order",
			description: "Retrieve the details of one order.",
			params:      schema.New(id("orderId", "order")),
			actions:     grant("orders", "get"),
			handler:     bind((*paypal.Client).GetOrder),
		},
		{
			name:        "pay_order",
			human:       "Process Payment",
			description: "Capture payment for an order the buyer has approved.",
			movesMoney:  true,
			params:      schema.New(id("orderId", "order")),
			actions:     grant("orders", "capture"),
			handler:     bind((*paypal.Client).PayOrder),
		},
	}
}

func refundDefinitions() []definition {
	return []definition{
		{
			name:        "create_refund",
			human:       "Create Refund",
			description: "Refund a captured payment, fully or partially.",
			movesMoney:  true,
			params: schema.New(
				id("captureId", "capture to refund"),
				num("amount", "Amount to refund; the full capture when omitted."),
				str("currencyCode", "Currency of amount; required with amount."),
				str("invoiceId", "Merchant invoice reference."),
				str("noteToPayer", "Reason shown to the payer."),
			),
			actions: grant("refunds", "create"),
			handler: bind((*paypal.Client).CreateRefund),
		},
		{
			name:        "get_refund",
			human:       "Get Refund",
			description: "Retrieve the details of one refund.",
			params:      schema.New(id("refundId", "refund")),
			actions:     grant("refunds", "get"),
			handler:     bind((*paypal.Client).GetRefund),
		},
	}
}

func disputeDefinitions() []definition {
	return []definition{
		{
			name:        "list_disputes",
			human:       "List Disputes",
			description: "List disputes, optionally by state.",
			params: schema.New(
				str("disputeState", "Only list disputes in this state.", paypal.DisputeStates...),
				withDefault(integer("pageSize", "Number of disputes per page."), 10),
			),
			actions: grant("disputes", "list"),
			handler: bind((*paypal.Client).ListDisputes),
		},
		{
			name:        "get_dispute",
			human:       "Get Dispute",
			description: "Retrieve the details of one dispute.",
			params:      schema.New(id("disputeId", "dispute")),
			actions:     grant("disputes", "get"),
			handler:     bind((*paypal.Client).GetDispute),
		},
		{
			name:        "accept_dispute_claim",
			human:       "Accept Dispute Claim",
			description: "Accept liability for a dispute, which closes it in the buyer's favour.",
			movesMoney:  true,
			params: schema.New(
				id("disputeId", "dispute"),
				required(str("note", "Note about accepting the claim.")),
			),
			actions: grant("disputes", "create"),
			handler: bind((*paypal.Client).AcceptDisputeClaim),
		},
	}
}

func shipmentDefinitions() []definition {
	return []definition{
		{
			name:  "create_shipment_tracking",
			human: "Create Shipment Tracking",
			description: "Add tracking information to a captured payment. " +
				"Give transactionId, or orderId to use the order's first capture.",
			params: schema.New(
				str("orderId", "Order whose capture is tracked."),
				str("transactionId", "Capture ID to track."),
				required(str("trackingNumber", "Carrier tracking number.")),
				withDefault(str("status", "Shipment status.", paypal.ShipmentStatuses...), "SHIPPED"),
				required(str("carrier", "Carrier code, for example FEDEX.")),
			),
			actions: grant("shipment", "create"),
			handler: bind((*paypal.Client).CreateShipmentTracking),
		},
		{
			name:        "get_shipment_tracking",
			human:       "Get Shipment Tracking",
			description: "Retrieve the trackers of a captured payment, by transactionId or orderId.",
			params: schema.New(
				str("orderId", "Order whose capture is tracked."),
				str("transactionId", "Capture ID."),
			),
			actions: grant("shipment", "get"),
			handler: bind((*paypal.Client).GetShipmentTracking),
		},
		{
			name:        "update_shipment_tracking",
			human:       "Update Shipment Tracking",
			description: "Change the status, carrier or tracking number of a tracker.",
			params: schema.New(
				id("transactionId", "tracked capture"),
				required(str("trackingNumber", "Current tracking number.")),
				str("newTrackingNumber", "Replacement tracking number."),
				required(str("status", "Shipment status.", paypal.ShipmentStatuses...)),
				str("carrier", "Carrier code."),
			),
			actions: grant("shipment", "update"),
			handler: bind((*paypal.Client).UpdateShipmentTracking),
		},
	}
}

func transactionDefinitions() []definition {
	return []definition{
		{
			name:  "list_transactions",
			human: "List Transactions",
			description: "Search transactions. Without dates the last 31 days are searched; " +
				"a transactionId is searched back month by month up to searchMonths.",
			params: schema.New(
				str("transactionId", "Transaction to find."),
				withDefault(str("transactionStatus", "D denied, P pending, S success, V reversed.", paypal.TransactionStatuses...), "S"),
				str("startDate", "Start of the range, RFC3339 or YYYY-MM-DD."),
				str("endDate", "End of the range, RFC3339 or YYYY-MM-DD."),
				withDefault(between(integer("searchMonths", "How many 31 day windows to search for transactionId."), 1, paypal.MaxSearchMonths), 12),
				withDefault(integer("pageSize", "Transactions per page."), 100),
				withDefault(integer("page", "Page number."), 1),
			),
			actions: grant("transactions", "list"),
			handler: bind((*paypal.Client).ListTransactions),
		},
	}
}
