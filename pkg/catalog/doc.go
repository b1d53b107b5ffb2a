// Package catalog declares every PayPal operation the toolkit can expose: its
// name, description, parameter schema, the actions that grant it and the
// typed handler that runs it.
//
// Invariants:
// - Operation names are unique; the table is checked when a Catalog is built.
// - Declaration order is the tool list order.
// - Every schema compiles before the Catalog is returned, so lookup never
//   meets an invalid validator.
// - Handlers receive the normalized, validated argument document only.
//
// Usage:
//
//	cat, err := catalog.New(execCtx)
//	op, ok := cat.Lookup("create_order")
//	res := op.Validate(rawArgs)
//	out, err := op.Invoke(ctx, client, res.Value())
package catalog
