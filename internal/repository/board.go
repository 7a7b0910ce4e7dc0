package repository

import (
	"context"
	"errors"

	"pinboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BoardRepository defines persistence operations for boards and
// board-pin memberships.
type BoardRepository interface {
	Create(ctx context.Context, board *models.Board) error
	GetByID(ctx context.Context, id uint) (*models.Board, error)
	GetByIDWithPins(ctx context.Context, id uint, currentUserID uint) (*models.Board, error)
	ListByOwner(ctx context.Context, userID uint, coverLimit int) ([]models.Board, error)
	Update(ctx context.Context, board *models.Board) error
	Delete(ctx context.Context, id uint) error

	AttachPin(ctx context.Context, boardID, pinID uint) error
	DetachPin(ctx context.Context, boardID, pinID uint) error
	ListPins(ctx context.Context, boardID uint, limit int, currentUserID uint) ([]models.Pin, error)
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository returns a new BoardRepository implementation.
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func withPinsCount(query *gorm.DB) *gorm.DB {
	return query.Select(
		"boards.*, " +
			"(SELECT COUNT(*) FROM board_pins WHERE board_pins.board_id = boards.id) AS pins_count",
	)
}

func (r *boardRepository) Create(ctx context.Context, board *models.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *boardRepository) GetByID(ctx context.Context, id uint) (*models.Board, error) {
	var board models.Board
	query := withPinsCount(r.db.WithContext(ctx).Model(&models.Board{})).
		Where("boards.id = ?", id)
	if err := query.First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Board", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &board, nil
}

// GetByIDWithPins loads a board together with all of its pins, most
// recently attached first.
func (r *boardRepository) GetByIDWithPins(ctx context.Context, id uint, currentUserID uint) (*models.Board, error) {
	board, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pins, err := r.ListPins(ctx, id, 0, currentUserID)
	if err != nil {
		return nil, err
	}
	board.Pins = pins
	return board, nil
}

// ListByOwner returns a user's boards, newest first, each carrying its
// pin count and up to coverLimit recently attached pins for covers.
func (r *boardRepository) ListByOwner(ctx context.Context, userID uint, coverLimit int) ([]models.Board, error) {
	var boards []models.Board
	query := withPinsCount(r.db.WithContext(ctx).Model(&models.Board{})).
		Where("boards.user_id = ?", userID).
		Order("boards.created_at DESC")
	if err := query.Find(&boards).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if coverLimit > 0 {
		for i := range boards {
			pins, err := r.ListPins(ctx, boards[i].ID, coverLimit, 0)
			if err != nil {
				return nil, err
			}
			boards[i].Pins = pins
		}
	}
	return boards, nil
}

func (r *boardRepository) Update(ctx context.Context, board *models.Board) error {
	if err := r.db.WithContext(ctx).Save(board).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes a board and its memberships. Pins themselves survive.
func (r *boardRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.BoardPin{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// AttachPin records a pin on a board. Attaching a pin that is already
// on the board is a no-op.
func (r *boardRepository) AttachPin(ctx context.Context, boardID, pinID uint) error {
	membership := models.BoardPin{BoardID: boardID, PinID: pinID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&membership).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DetachPin removes a pin from a board. Detaching a pin that is not on
// the board is a no-op.
func (r *boardRepository) DetachPin(ctx context.Context, boardID, pinID uint) error {
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND pin_id = ?", boardID, pinID).
		Delete(&models.BoardPin{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListPins returns a board's pins ordered by when they were attached,
// most recent first. A limit of 0 means no limit.
func (r *boardRepository) ListPins(ctx context.Context, boardID uint, limit int, currentUserID uint) ([]models.Pin, error) {
	var pins []models.Pin
	query := applyPinDetails(r.db.WithContext(ctx).Model(&models.Pin{}), currentUserID).
		Joins("JOIN board_pins ON board_pins.pin_id = pins.id").
		Where("board_pins.board_id = ?", boardID).
		Order("board_pins.created_at DESC").
		Preload("User")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&pins).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return pins, nil
}

