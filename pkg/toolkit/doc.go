// Package toolkit is the entry point framework adapters call: it exposes the
// permission-filtered tool list and dispatches tool calls by name.
//
// Invariants:
// - Every Execute returns exactly one Envelope kind; panics and errors never
//   escape the dispatch boundary.
// - A name outside the filtered tool set never reaches the transport.
// - Error messages returned to callers are redacted and length-capped; the
//   full error goes to the diagnostic logger.
// - A Toolkit holds no per-call state, so concurrent dispatches are independent.
//
// Usage:
//
//	tk, err := toolkit.New(toolkit.Config{
//		Actions: permission.Actions{"orders": {"create": true, "get": true}},
//		Context: paypal.ExecutionContext{Source: "my-agent"},
//	}, transport)
//	for _, tool := range tk.ListTools() {
//		// register tool.Name / tool.Description / tool.Parameters
//	}
//	result := tk.Dispatch(ctx, "create_order", rawArgs)
package toolkit
