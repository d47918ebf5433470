package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodcourt/storefront/internal/domain/cart"
	"github.com/foodcourt/storefront/internal/domain/shared"
)

// GormGuestCartRepository implements cart.GuestCartRepository using GORM
type GormGuestCartRepository struct {
	db *gorm.DB
}

// NewGormGuestCartRepository creates a new GormGuestCartRepository
func NewGormGuestCartRepository(db *gorm.DB) *GormGuestCartRepository {
	return &GormGuestCartRepository{db: db}
}

// FindByToken loads a cart with its items
func (r *GormGuestCartRepository) FindByToken(ctx context.Context, token string) (*cart.GuestCart, error) {
	var c cart.GuestCart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("token = ?", token).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindOrCreateByToken loads the cart for the token, creating it on first use
func (r *GormGuestCartRepository) FindOrCreateByToken(ctx context.Context, token string) (*cart.GuestCart, error) {
	c, err := r.FindByToken(ctx, token)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	c, err = cart.NewGuestCart(token)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Save persists the cart and replaces its item rows. Items removed from the
// aggregate are deleted so quantity-zero lines do not linger.
func (r *GormGuestCartRepository) Save(ctx context.Context, c *cart.GuestCart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(c).Error; err != nil {
			return err
		}

		keep := make([]uint, 0, len(c.Items))
		for i := range c.Items {
			c.Items[i].CartID = c.ID
			if err := tx.Save(&c.Items[i]).Error; err != nil {
				return err
			}
			keep = append(keep, c.Items[i].ID)
		}

		del := tx.Where("cart_id = ?", c.ID)
		if len(keep) > 0 {
			del = del.Where("id NOT IN ?", keep)
		}
		return del.Delete(&cart.CartItem{}).Error
	})
}

// DeleteByToken retires the cart and its items
func (r *GormGuestCartRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c cart.GuestCart
		if err := tx.Where("token = ?", token).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // already gone
			}
			return err
		}
		if err := tx.Where("cart_id = ?", c.ID).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
}

var _ cart.GuestCartRepository = (*GormGuestCartRepository)(nil)
