// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"time"

	"pinboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePin constructs and persists a sample `models.Pin` for the given user,
// with a realistic created_at spread over the past weeks.
func (f *Factory) CreatePin(user *models.User, overrides ...func(*models.Pin)) (*models.Pin, error) {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}

	pin := &models.Pin{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 2, 5, "\n"),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/1100", gofakeit.UUID()),
		UserID:      user.ID,
		CreatedAt: time.Now().
			Add(-time.Duration(gofakeit.Number(0, maxDays)) * 24 * time.Hour).
			Add(-time.Duration(gofakeit.Number(0, 23)) * time.Hour),
	}

	for _, override := range overrides {
		override(pin)
	}

	if err := f.db.Create(pin).Error; err != nil {
		return nil, err
	}
	return pin, nil
}

// CreateBoard constructs and persists a sample `models.Board` for the given user.
func (f *Factory) CreateBoard(user *models.User, overrides ...func(*models.Board)) (*models.Board, error) {
	description := gofakeit.Sentence(8)
	board := &models.Board{
		Name:        gofakeit.HipsterWord() + " " + gofakeit.NounAbstract(),
		Description: &description,
		UserID:      user.ID,
	}

	for _, override := range overrides {
		override(board)
	}

	if err := f.db.Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

// AttachPin records `pin` on `board`, ignoring duplicates.
func (f *Factory) AttachPin(board *models.Board, pin *models.Pin) error {
	membership := &models.BoardPin{BoardID: board.ID, PinID: pin.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(membership).Error
}

// CreateLike persists a like from `user` on `pin`, ignoring duplicates.
func (f *Factory) CreateLike(user *models.User, pin *models.Pin) error {
	like := &models.Like{UserID: user.ID, PinID: pin.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided pin authored by the provided user.
func (f *Factory) CreateComment(user *models.User, pin *models.Pin, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PinID:   pin.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
