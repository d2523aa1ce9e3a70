// Package delivery defines the contract every transport front end
// satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
