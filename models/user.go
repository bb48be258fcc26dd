package models

import "time"

type User struct {
	ID             uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string      `gorm:"not null" json:"name"`
	Email          string      `gorm:"unique;not null" json:"email"`
	PasswordHash   string      `gorm:"not null" json:"-"`
	Phone          string      `json:"phone"`
	EmailConfirmed bool        `gorm:"default:false" json:"email_confirmed"`
	Cart           []CartEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders         []Order     `gorm:"foreignKey:UserID" json:"orders"`
	CreatedAt      time.Time   `json:"created_at"`
}
