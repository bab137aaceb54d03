// Package cart persists per-session shopping carts in an external key-value
// store. Carts are owned by a single client session and never shared.
package cart

import (
	"context"
	"errors"

	"storefront/internal/models"
)

// ErrCartNotFound means no cart exists yet for the session; callers start
// from an empty cart.
var ErrCartNotFound = errors.New("cart not found")

// ErrMalformedCart means the stored blob could not be decoded. It is
// surfaced rather than swallowed so the caller can decide to reset.
var ErrMalformedCart = errors.New("stored cart is malformed")

// Store is the persistence boundary for session carts.
type Store interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
