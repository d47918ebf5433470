package cart

import "context"

// GuestCartRepository defines persistence operations for guest carts
type GuestCartRepository interface {
	// FindByToken loads a cart with its items. Returns shared.ErrNotFound
	// when no cart exists for the token.
	FindByToken(ctx context.Context, token string) (*GuestCart, error)
	// FindOrCreateByToken loads the cart for the token, creating an empty
	// one on first use.
	FindOrCreateByToken(ctx context.Context, token string) (*GuestCart, error)
	Save(ctx context.Context, cart *GuestCart) error
	// DeleteByToken retires the cart once its order has been placed.
	DeleteByToken(ctx context.Context, token string) error
}
