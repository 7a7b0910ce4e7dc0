package server

import (
	"pinboard/internal/models"
	"pinboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPins returns the public pin feed, newest first (public)
func (s *Server) GetPins(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p := parsePagination(c, 20)

	currentUserID, _ := s.optionalUserID(c)

	pins, err := s.pinService.ListPins(ctx, service.ListPinsInput{
		Limit:         p.Limit,
		Offset:        p.Offset,
		CurrentUserID: currentUserID,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(pins)
}

// GetPin returns a single pin with its counts (public)
func (s *Server) GetPin(c *fiber.Ctx) error {
	ctx := c.UserContext()

	pinID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	currentUserID, _ := s.optionalUserID(c)

	pin, err := s.pinService.GetPin(ctx, pinID, currentUserID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(pin)
}

// CreatePin creates a pin owned by the current user (protected)
func (s *Server) CreatePin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pin, err := s.pinService.CreatePin(ctx, service.CreatePinInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pin created",
		"pin":     pin,
	})
}

// UpdatePin edits a pin's title/description (creator only)
func (s *Server) UpdatePin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	pinID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pin, err := s.pinService.UpdatePin(ctx, service.UpdatePinInput{
		UserID:      userID,
		PinID:       pinID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Pin updated",
		"pin":     pin,
	})
}

// DeletePin removes a pin and everything hanging off it (creator only)
func (s *Server) DeletePin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	pinID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.pinService.DeletePin(ctx, service.DeletePinInput{
		UserID: userID,
		PinID:  pinID,
	}); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Pin deleted"})
}

// LikePin toggles the current user's like on a pin (protected)
func (s *Server) LikePin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	pinID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, err := s.likeService.Toggle(ctx, userID, pinID)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.JSON(result)
}

// SavePin attaches a pin to one of the current user's boards (protected)
func (s *Server) SavePin(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	pinID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		BoardID uint `json:"board_id"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil || req.BoardID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("board_id is required"))
	}

	if err := s.boardService.SavePin(ctx, pinID, req.BoardID, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pin saved"})
}
