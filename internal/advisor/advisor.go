// Package advisor talks to the external travel-advisory collaborator.
//
// The trip engine only ever hands it a free-text query string; answers are
// advisory text for display and are never parsed back into trip state. A
// reply that arrives after further state mutations is simply shown as-is,
// and closing the advisor panel does not cancel an in-flight query.
package advisor

import "context"

// Answer holds the result of one advisory query.
type Answer struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Advisor answers free-text travel questions.
type Advisor interface {
	// Ask sends a query and returns the advisory text.
	Ask(ctx context.Context, query string) (*Answer, error)

	// Available checks whether the model server is reachable.
	Available(ctx context.Context) bool
}
