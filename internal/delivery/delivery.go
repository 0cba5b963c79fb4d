// Package delivery defines the entry points through which the application
// serves traffic.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the
// surface stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
