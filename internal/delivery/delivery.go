// Package delivery defines the contract every transport front-end of
// the storefront satisfies.
package delivery

import "context"

// Delivery is a serving entry point (HTTP server, worker, ...). Serve
// blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
