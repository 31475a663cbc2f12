package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleStandard = 0
	RoleAdmin    = 1
)

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"_id"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Role     int    `gorm:"default:0" json:"role"`
	// Token holds the single active session credential. A new login
	// overwrites it; logout clears it.
	Token     string        `gorm:"index" json:"-"`
	Cart      []CartItem    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	History   []HistoryItem `gorm:"serializer:json" json:"history"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HistoryItem is a reference to a past purchase. Read-only in this API;
// nothing here writes history.
type HistoryItem struct {
	ProductID      uint      `json:"product_id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Quantity       int       `json:"quantity"`
	PaymentID      string    `json:"payment_id"`
	DateOfPurchase time.Time `json:"date_of_purchase"`
}

func (u *User) IsAdmin() bool {
	return u.Role != RoleStandard
}

// SetPassword stores a bcrypt hash of the plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// ComparePassword reports whether plain matches the stored hash.
func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
