package models

import "time"

// Like represents a user's like on a pin.
// The combination of UserID and PinID must be unique; rows are hard-deleted
// so the toggle operation is a strict flip rather than a counter.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_pin" json:"user_id"`
	PinID     uint      `gorm:"not null;uniqueIndex:idx_user_pin" json:"pin_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Pin  Pin  `gorm:"foreignKey:PinID;constraint:OnDelete:CASCADE" json:"-"`
}
