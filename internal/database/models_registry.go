package database

import "pinboard/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Pin{},
		&models.Board{},
		&models.BoardPin{},
		&models.Like{},
		&models.Comment{},
	}
}
