package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxBoardNameLen bounds board names at creation and update time.
const MaxBoardNameLen = 255

// Board is a named collection of pins owned by exactly one user.
// The owner (UserID) is immutable after creation; all board mutation,
// including viewing, is restricted to the owner.
type Board struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	User        User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// PinsCount is not persisted; computed at query time
	PinsCount int `gorm:"->" json:"pins_count"`
	// Pins is populated by the repository from the membership join,
	// ordered by attachment time descending.
	Pins      []Pin          `gorm:"-" json:"pins,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
