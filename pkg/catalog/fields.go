package catalog

import "github.com/harun/paypal-agent-toolkit/pkg/schema"

func str(name, desc string, enum ...string) schema.Field {
	return schema.Field{Name: name, Type: schema.String, Description: desc, Enum: enum}
}

func num(name, desc string) schema.Field {
	return schema.Field{Name: name, Type: schema.Number, Description: desc}
}

func integer(name, desc string) schema.Field {
	return schema.Field{Name: name, Type: schema.Integer, Description: desc}
}

func boolean(name, desc string) schema.Field {
	return schema.Field{Name: name, Type: schema.Boolean, Description: desc}
}

func anyValue(name, desc string) schema.Field {
	return schema.Field{Name: name, Type: schema.Any, Description: desc}
}

func object(name, desc string, fields ...schema.Field) schema.Field {
	return schema.Field{Name: name, Type: schema.Object, Description: desc, Fields: fields}
}

// open marks an object field as accepting undeclared keys.
func open(f schema.Field) schema.Field {
	f.Open = true
	return f
}

func list(name, desc string, item schema.Field) schema.Field {
	return schema.Field{Name: name, Type: schema.Array, Description: desc, Items: &item}
}

func required(f schema.Field) schema.Field {
	f.Required = true
	return f
}

func withDefault(f schema.Field, v interface{}) schema.Field {
	f.Default = v
	return f
}

// between bounds a numeric field, inclusive.
func between(f schema.Field, min, max float64) schema.Field {
	f.Minimum = &min
	f.Maximum = &max
	return f
}

func id(name, what string) schema.Field {
	return required(str(name, "The ID of the "+what+"."))
}

func paging() []schema.Field {
	return []schema.Field{
		withDefault(integer("page", "The page number of the result set."), 1),
		withDefault(integer("pageSize", "The number of items per page."), 10),
		withDefault(boolean("totalRequired", "Whether to include the total item and page counts."), false),
	}
}

func money(name, desc string) schema.Field {
	return object(name, desc,
		required(str("currencyCode", "Three letter ISO-4217 currency code.")),
		required(str("value", "Amount as a decimal string, for example \"10.00\".")),
	)
}

// updateMoney is a money value whose currency falls back to the call's
// currency.
func updateMoney(name, desc string) schema.Field {
	return object(name, desc,
		required(str("value", "Amount as a decimal string, for example \"10.00\".")),
		str("currencyCode", "Three letter ISO-4217 currency code."),
	)
}
