package models

import "time"

// CartEntry holds one (user, item) pair; the composite unique index
// enforces at most one row per pair.
type CartEntry struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"user_id"`
	ItemID   uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"item_id"`
	Item     Item      `gorm:"foreignKey:ItemID" json:"item"`
	Quantity int       `gorm:"not null" json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}
