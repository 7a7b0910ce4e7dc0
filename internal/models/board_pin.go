package models

import "time"

// BoardPin is the membership relation linking a board to a pin.
// The combination of BoardID and PinID must be unique; CreatedAt records
// when the pin was attached and drives "most recently added first" ordering.
// Rows are hard-deleted so a detach followed by a re-attach gets a fresh
// membership timestamp.
type BoardPin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BoardID   uint      `gorm:"not null;uniqueIndex:idx_board_pin" json:"board_id"`
	PinID     uint      `gorm:"not null;uniqueIndex:idx_board_pin" json:"pin_id"`
	CreatedAt time.Time `json:"created_at"`

	Board Board `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"-"`
	Pin   Pin   `gorm:"foreignKey:PinID;constraint:OnDelete:CASCADE" json:"-"`
}
