// Package delivery defines the transports that expose the application.
package delivery

import "context"

// Delivery is a long-running transport started by the application entry point.
// Serve blocks until the transport stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
