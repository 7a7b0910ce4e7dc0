package server

import (
	"pinboard/internal/models"
	"pinboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBoards returns the current user's boards with cover previews (protected)
func (s *Server) GetBoards(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	boards, err := s.boardService.ListBoards(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(boards)
}

// CreateBoard creates a board owned by the current user (protected)
func (s *Server) CreateBoard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	board, err := s.boardService.CreateBoard(ctx, service.CreateBoardInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Board created",
		"board":   board,
	})
}

// GetBoard returns a board with its pins (owner only)
func (s *Server) GetBoard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	board, err := s.boardService.GetBoard(ctx, boardID, userID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(board)
}

// UpdateBoard edits a board's name/description (owner only)
func (s *Server) UpdateBoard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	board, err := s.boardService.UpdateBoard(ctx, service.UpdateBoardInput{
		UserID:      userID,
		BoardID:     boardID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Board updated",
		"board":   board,
	})
}

// DeleteBoard removes a board and its memberships; pins survive (owner only)
func (s *Server) DeleteBoard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.boardService.DeleteBoard(ctx, service.DeleteBoardInput{
		UserID:  userID,
		BoardID: boardID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Board deleted"})
}

// AttachPin puts a pin on a board (owner only, idempotent)
func (s *Server) AttachPin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		PinID uint `json:"pin_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil || req.PinID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("pin_id is required"))
	}

	if err := s.boardService.AttachPin(ctx, service.AttachPinInput{
		ActorID: userID,
		BoardID: boardID,
		PinID:   req.PinID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pin attached"})
}

// DetachPin removes a pin from a board (owner only, idempotent)
func (s *Server) DetachPin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	boardID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	pinID, err := s.parseID(c, "pinId")
	if err != nil {
		return nil
	}

	if err := s.boardService.DetachPin(ctx, service.DetachPinInput{
		ActorID: userID,
		BoardID: boardID,
		PinID:   pinID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Pin detached"})
}
