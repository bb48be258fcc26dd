package models

import "time"

type Item struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	PriceID   string    `json:"price_id"` // payment-provider price reference
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Details   string    `json:"details"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
