// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is cancelled.
	Serve(ctx context.Context) error
}
