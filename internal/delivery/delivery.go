// Package delivery defines the inbound surfaces the application serves.
package delivery

import "context"

// Delivery is a long-running inbound surface started by the application.
type Delivery interface {
	// Serve blocks until the surface stops. A normal shutdown returns nil.
	Serve(ctx context.Context) error
}
