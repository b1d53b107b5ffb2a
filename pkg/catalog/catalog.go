package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harun/paypal-agent-toolkit/pkg/paypal"
	"github.com/harun/paypal-agent-toolkit/pkg/permission"
	"github.com/harun/paypal-agent-toolkit/pkg/schema"
)

// ErrInvalidCatalog is returned when the operation table is inconsistent.
var ErrInvalidCatalog = errors.New("invalid operation catalog")

// Handler runs one operation with validated arguments.
type Handler func(ctx context.Context, client *paypal.Client, args json.RawMessage) (interface{}, error)

// Operation is one immutable tool descriptor.
type Operation struct {
	Name        string
	HumanName   string
	Description string
	Parameters  schema.Schema
	Actions     permission.Actions

	// InvalidMessage, when set, replaces the validation report returned to
	// callers. The report itself is still logged.
	InvalidMessage string

	handler   Handler
	validator *schema.Validator
}

// RequiredActions returns the (product, action) pairs that grant the operation.
func (o *Operation) RequiredActions() permission.Actions {
	return o.Actions
}

// JSONSchema renders the parameter schema.
func (o *Operation) JSONSchema() map[string]interface{} {
	return o.Parameters.JSONSchema()
}

// Validate normalizes and validates raw arguments.
func (o *Operation) Validate(raw json.RawMessage) schema.Result {
	return o.validator.Validate(raw)
}

// Invoke runs the handler with a document returned by a valid Validate.
func (o *Operation) Invoke(ctx context.Context, client *paypal.Client, args json.RawMessage) (interface{}, error) {
	return o.handler(ctx, client, args)
}

// Catalog is the ordered, validated operation table for one execution context.
type Catalog struct {
	ops    []*Operation
	byName map[string]*Operation
}

// New builds the catalog. Descriptions are rendered for the context's
// environment.
func New(execCtx paypal.ExecutionContext) (*Catalog, error) {
	return build(definitions(), execCtx)
}

func build(defs []definition, execCtx paypal.ExecutionContext) (*Catalog, error) {
	c := &Catalog{
		ops:    make([]*Operation, 0, len(defs)),
		byName: make(map[string]*Operation, len(defs)),
	}

	for _, d := range defs {
		if d.name == "" {
			return nil, fmt.Errorf("%w: operation without a name", ErrInvalidCatalog)
		}
		if _, dup := c.byName[d.name]; dup {
			return nil, fmt.Errorf("%w: duplicate operation %s", ErrInvalidCatalog, d.name)
		}
		if d.handler == nil {
			return nil, fmt.Errorf("%w: operation %s has no handler", ErrInvalidCatalog, d.name)
		}
		if d.actions.Count() == 0 {
			return nil, fmt.Errorf("%w: operation %s requires no action", ErrInvalidCatalog, d.name)
		}

		v, err := schema.Compile(d.params)
		if err != nil {
			return nil, fmt.Errorf("%w: operation %s: %v", ErrInvalidCatalog, d.name, err)
		}

		op := &Operation{
			Name:           d.name,
			HumanName:      d.human,
			Description:    describe(d.description, d.movesMoney, execCtx),
			Parameters:     d.params,
			Actions:        d.actions,
			InvalidMessage: d.invalidMessage,
			handler:        d.handler,
			validator:      v,
		}
		c.ops = append(c.ops, op)
		c.byName[op.Name] = op
	}

	return c, nil
}

// Operations returns every operation in declaration order.
func (c *Catalog) Operations() []*Operation {
	out := make([]*Operation, len(c.ops))
	copy(out, c.ops)
	return out
}

// Lookup finds an operation by name.
func (c *Catalog) Lookup(name string) (*Operation, bool) {
	op, ok := c.byName[name]
	return op, ok
}

// Actions returns every (product, action) pair some operation can be granted
// by, all set to true.
func (c *Catalog) Actions() permission.Actions {
	out := permission.Actions{}
	for _, op := range c.ops {
		for product, actions := range op.Actions {
			if out[product] == nil {
				out[product] = map[string]bool{}
			}
			for action := range actions {
				out[product][action] = true
			}
		}
	}
	return out
}

// Allowed returns the operations granted by actions, in declaration order.
func (c *Catalog) Allowed(actions permission.Actions) []*Operation {
	return permission.Filter(c.ops, actions)
}

func describe(tmpl string, movesMoney bool, execCtx paypal.ExecutionContext) string {
	desc := strings.ReplaceAll(tmpl, "{environment}", execCtx.Environment())
	if !movesMoney {
		return desc
	}
	if execCtx.IsSandbox() {
		return desc + " Runs against the PayPal sandbox; no real funds move."
	}
	return desc + " Runs against live PayPal and moves real funds; confirm the details with the user first."
}

// bind adapts a typed client method to a Handler.
func bind[T any](fn func(*paypal.Client, context.Context, T) (interface{}, error)) Handler {
	return func(ctx context.Context, client *paypal.Client, args json.RawMessage) (interface{}, error) {
		var params T
		if err := json.Unmarshal(args, &params); err != nil {
			return nil, fmt.Errorf("failed to decode %T: %w", params, err)
		}
		return fn(client, ctx, params)
	}
}
