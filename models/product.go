package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	BrandID     uint      `gorm:"index" json:"brand_id"`
	Brand       Brand     `gorm:"foreignKey:BrandID" json:"brand"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Size        int       `json:"size"`
	Stock       int       `json:"stock"`
	Sold        int       `gorm:"default:0" json:"sold"`
	Shipping    bool      `gorm:"default:true" json:"shipping"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
