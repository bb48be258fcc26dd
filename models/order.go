package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the shop
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

type Order struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint          `gorm:"not null;index" json:"user_id"`
	User        User          `gorm:"foreignKey:UserID" json:"user"`
	OrderRef    string        `gorm:"uniqueIndex" json:"order_ref"`
	Status      OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalAmount float64       `json:"total_amount"`
	Items       []OrderedItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time     `json:"created_at"`
}

// OrderedItem is a line-item snapshot; name and unit price are copied from
// the item at placement time so the order survives later catalog edits.
type OrderedItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ItemID    uint    `json:"item_id"`
	ItemName  string  `json:"item_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}
