// Package delivery defines the transports that expose the storefront.
package delivery

import "context"

// Delivery is a long-running transport started by fx after all providers are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
