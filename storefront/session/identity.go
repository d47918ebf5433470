// Package session owns the two persistent client identifiers: the anonymous
// guest cart token and the admin bearer token. All reads and writes go
// through the Identity service; nothing else touches the underlying store.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	cartTokenKey = "guest_cart_token"
	authTokenKey = "auth_token"
)

// Identity manages the stored tokens with init-on-first-use semantics for
// the cart token
type Identity struct {
	store Store
}

// NewIdentity creates an Identity over the given store
func NewIdentity(store Store) *Identity {
	return &Identity{store: store}
}

// EnsureCartToken returns the stored guest cart token, generating and
// persisting one on first use
func (i *Identity) EnsureCartToken() (string, error) {
	token, err := i.store.Get(cartTokenKey)
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return "", err
	}

	token = "guest-" + uuid.NewString()
	if err := i.store.Set(cartTokenKey, token); err != nil {
		return "", fmt.Errorf("persist cart token: %w", err)
	}
	return token, nil
}

// CartToken returns the stored cart token without creating one; empty when
// none exists
func (i *Identity) CartToken() string {
	token, err := i.store.Get(cartTokenKey)
	if err != nil {
		return ""
	}
	return token
}

// ClearCartToken forgets the guest cart token. A successful order calls
// this so the next visit starts a fresh cart.
func (i *Identity) ClearCartToken() error {
	return i.store.Delete(cartTokenKey)
}

// AuthToken returns the stored admin bearer token, empty when logged out
func (i *Identity) AuthToken() string {
	token, err := i.store.Get(authTokenKey)
	if err != nil {
		return ""
	}
	return token
}

// SetAuthToken stores the admin bearer token
func (i *Identity) SetAuthToken(token string) error {
	return i.store.Set(authTokenKey, token)
}

// ClearAuthToken forgets the admin bearer token
func (i *Identity) ClearAuthToken() error {
	return i.store.Delete(authTokenKey)
}
