package service

import (
	"context"
	"fmt"

	"pinboard/internal/media"
	"pinboard/internal/models"
	"pinboard/internal/repository"
)

// boardCoverLimit caps the preview pins attached to each board in
// collection listings.
const boardCoverLimit = 4

type BoardService struct {
	boardRepo repository.BoardRepository
	pinRepo   repository.PinRepository
	baseURL   string
}

type CreateBoardInput struct {
	UserID      uint
	Name        string
	Description *string
}

type UpdateBoardInput struct {
	UserID      uint
	BoardID     uint
	Name        string
	Description *string
}

type DeleteBoardInput struct {
	UserID  uint
	BoardID uint
}

type AttachPinInput struct {
	ActorID uint
	BoardID uint
	PinID   uint
}

type DetachPinInput struct {
	ActorID uint
	BoardID uint
	PinID   uint
}

func NewBoardService(boardRepo repository.BoardRepository, pinRepo repository.PinRepository, baseURL string) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		pinRepo:   pinRepo,
		baseURL:   baseURL,
	}
}

func (s *BoardService) CreateBoard(ctx context.Context, in CreateBoardInput) (*models.Board, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(in.Name) > models.MaxBoardNameLen {
		return nil, models.NewValidationError(fmt.Sprintf("Name too long (max %d characters)", models.MaxBoardNameLen))
	}

	board := &models.Board{
		Name:        in.Name,
		Description: in.Description,
		UserID:      in.UserID,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}
	return s.boardRepo.GetByID(ctx, board.ID)
}

// GetBoard returns a board with its full pin list. Boards are private to
// their owner.
func (s *BoardService) GetBoard(ctx context.Context, boardID, actorID uint) (*models.Board, error) {
	board, err := s.boardRepo.GetByIDWithPins(ctx, boardID, actorID)
	if err != nil {
		return nil, err
	}
	if board.UserID != actorID {
		return nil, models.NewUnauthorizedError("You can only view your own boards")
	}

	s.normalizePins(board.Pins)
	return board, nil
}

// ListBoards returns the actor's boards, newest first, with pin counts
// and cover previews.
func (s *BoardService) ListBoards(ctx context.Context, actorID uint) ([]models.Board, error) {
	boards, err := s.boardRepo.ListByOwner(ctx, actorID, boardCoverLimit)
	if err != nil {
		return nil, err
	}
	for i := range boards {
		s.normalizePins(boards[i].Pins)
	}
	return boards, nil
}

func (s *BoardService) UpdateBoard(ctx context.Context, in UpdateBoardInput) (*models.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	if board.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own boards")
	}

	if in.Name != "" {
		if len(in.Name) > models.MaxBoardNameLen {
			return nil, models.NewValidationError(fmt.Sprintf("Name too long (max %d characters)", models.MaxBoardNameLen))
		}
		board.Name = in.Name
	}
	if in.Description != nil {
		board.Description = in.Description
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}
	return s.boardRepo.GetByID(ctx, board.ID)
}

func (s *BoardService) DeleteBoard(ctx context.Context, in DeleteBoardInput) error {
	board, err := s.boardRepo.GetByID(ctx, in.BoardID)
	if err != nil {
		return err
	}
	if board.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own boards")
	}

	return s.boardRepo.Delete(ctx, in.BoardID)
}

// AttachPin puts a pin on one of the actor's boards. Attaching a pin
// that is already on the board succeeds without changing anything.
func (s *BoardService) AttachPin(ctx context.Context, in AttachPinInput) error {
	board, err := s.boardRepo.GetByID(ctx, in.BoardID)
	if err != nil {
		return err
	}
	if board.UserID != in.ActorID {
		return models.NewUnauthorizedError("You can only modify your own boards")
	}
	if _, err := s.pinRepo.GetByID(ctx, in.PinID, 0); err != nil {
		return err
	}

	return s.boardRepo.AttachPin(ctx, in.BoardID, in.PinID)
}

// DetachPin removes a pin from one of the actor's boards. Detaching a
// pin that is not on the board succeeds.
func (s *BoardService) DetachPin(ctx context.Context, in DetachPinInput) error {
	board, err := s.boardRepo.GetByID(ctx, in.BoardID)
	if err != nil {
		return err
	}
	if board.UserID != in.ActorID {
		return models.NewUnauthorizedError("You can only modify your own boards")
	}

	return s.boardRepo.DetachPin(ctx, in.BoardID, in.PinID)
}

// SavePin is the bookmark flow: attach any existing pin to one of the
// actor's own boards.
func (s *BoardService) SavePin(ctx context.Context, pinID, boardID, actorID uint) error {
	if _, err := s.pinRepo.GetByID(ctx, pinID, 0); err != nil {
		return err
	}
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if board.UserID != actorID {
		return models.NewUnauthorizedError("You can only save pins to your own boards")
	}

	return s.boardRepo.AttachPin(ctx, boardID, pinID)
}

func (s *BoardService) normalizePins(pins []models.Pin) {
	for i := range pins {
		pins[i].ImageURL = media.NormalizeURL(s.baseURL, pins[i].ImageURL)
	}
}
