package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment left by a user on a pin.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"not null" json:"content"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	PinID     uint           `gorm:"not null" json:"pin_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Pin       Pin            `gorm:"foreignKey:PinID" json:"pin,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
