// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport endpoint (HTTP, worker, ...) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
