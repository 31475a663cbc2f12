package models

type Brand struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"_id"`
	Name string `gorm:"unique;not null" json:"name"`
}
