package models

import "time"

// CartItem is one line of a user's cart. The composite unique index is what
// guarantees at most one line per (user, product); addToCart relies on it
// for its ON CONFLICT upsert.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"-"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `json:"date"`
}
