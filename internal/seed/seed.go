package seed

import (
	"fmt"
	"log/slog"

	"pinboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much data Seed generates.
type Options struct {
	NumUsers    int
	NumPins     int
	NumBoards   int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seed populates the database with a realistic mesh of users, pins,
// boards, likes and comments.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPins <= 0 {
		opts.NumPins = opts.NumUsers * 8
	}
	if opts.NumBoards <= 0 {
		opts.NumBoards = opts.NumUsers * 2
	}

	if opts.ShouldClean {
		slog.Info("Clearing existing data before seeding")
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
	}

	factory := NewFactory(db, opts)

	slog.Info("Seeding users", "count", opts.NumUsers)
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}

	slog.Info("Seeding pins", "count", opts.NumPins)
	pins := make([]*models.Pin, 0, opts.NumPins)
	for i := 0; i < opts.NumPins; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		pin, err := factory.CreatePin(author)
		if err != nil {
			return fmt.Errorf("failed to create pin: %w", err)
		}
		pins = append(pins, pin)
	}

	slog.Info("Seeding boards", "count", opts.NumBoards)
	boards := make([]*models.Board, 0, opts.NumBoards)
	for i := 0; i < opts.NumBoards; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		board, err := factory.CreateBoard(owner)
		if err != nil {
			return fmt.Errorf("failed to create board: %w", err)
		}
		boards = append(boards, board)
	}

	slog.Info("Attaching pins to boards")
	for _, board := range boards {
		attachments := gofakeit.Number(2, 10)
		for i := 0; i < attachments; i++ {
			pin := pins[gofakeit.Number(0, len(pins)-1)]
			if err := factory.AttachPin(board, pin); err != nil {
				return fmt.Errorf("failed to attach pin: %w", err)
			}
		}
	}

	slog.Info("Seeding likes")
	for _, pin := range pins {
		likers := gofakeit.Number(0, len(users)/2)
		for i := 0; i < likers; i++ {
			user := users[gofakeit.Number(0, len(users)-1)]
			if err := factory.CreateLike(user, pin); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
		}
	}

	slog.Info("Seeding comments")
	for _, pin := range pins {
		comments := gofakeit.Number(0, 5)
		for i := 0; i < comments; i++ {
			user := users[gofakeit.Number(0, len(users)-1)]
			if _, err := factory.CreateComment(user, pin); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
		}
	}

	slog.Info("Seeding complete",
		"users", len(users),
		"pins", len(pins),
		"boards", len(boards),
	)
	return nil
}

// clearData removes all rows from the seeded tables. Deletion order
// respects foreign key relationships.
func clearData(db *gorm.DB) error {
	tables := []any{
		&models.Comment{},
		&models.Like{},
		&models.BoardPin{},
		&models.Board{},
		&models.Pin{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
