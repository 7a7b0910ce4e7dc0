// Package service contains the application's business logic, sitting
// between the HTTP handlers and the repositories.
package service

import (
	"context"
	"fmt"
	"net/url"

	"pinboard/internal/cache"
	"pinboard/internal/media"
	"pinboard/internal/models"
	"pinboard/internal/repository"
)

// defaultPinPageSize is the feed page size the shared cache entry is
// keyed for. Other page sizes bypass the cache so a short page can never
// be served to a request expecting a full one.
const defaultPinPageSize = 20

type PinService struct {
	pinRepo repository.PinRepository
	baseURL string
}

type CreatePinInput struct {
	UserID      uint
	Title       string
	Description string
	ImageURL    string
}

type ListPinsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type UpdatePinInput struct {
	UserID      uint
	PinID       uint
	Title       string
	Description string
}

type DeletePinInput struct {
	UserID uint
	PinID  uint
}

// NewPinService returns a PinService. baseURL is the public base used to
// rewrite legacy storage image references on the way out.
func NewPinService(pinRepo repository.PinRepository, baseURL string) *PinService {
	return &PinService{pinRepo: pinRepo, baseURL: baseURL}
}

func (s *PinService) CreatePin(ctx context.Context, in CreatePinInput) (*models.Pin, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > models.MaxPinTitleLen {
		return nil, models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", models.MaxPinTitleLen))
	}
	if len(in.Description) > models.MaxPinDescriptionLen {
		return nil, models.NewValidationError(fmt.Sprintf("Description too long (max %d characters)", models.MaxPinDescriptionLen))
	}
	if in.ImageURL == "" {
		return nil, models.NewValidationError("image_url is required")
	}
	if _, err := url.ParseRequestURI(in.ImageURL); err != nil {
		return nil, models.NewValidationError("image_url must be a valid URL")
	}

	pin := &models.Pin{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		UserID:      in.UserID,
	}
	if err := s.pinRepo.Create(ctx, pin); err != nil {
		return nil, err
	}

	return s.GetPin(ctx, pin.ID, in.UserID)
}

func (s *PinService) GetPin(ctx context.Context, id uint, currentUserID uint) (*models.Pin, error) {
	pin, err := s.pinRepo.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	s.normalize(pin)
	return pin, nil
}

func (s *PinService) ListPins(ctx context.Context, in ListPinsInput) ([]models.Pin, error) {
	var pins []models.Pin
	var err error

	if in.Offset == 0 && in.Limit == defaultPinPageSize {
		key := cache.PinsListKey
		err = cache.Aside(ctx, key, &pins, cache.PinsListTTL, func() error {
			var fetchErr error
			pins, fetchErr = s.pinRepo.List(ctx, in.Limit, in.Offset, 0)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}

		// cached entries carry no viewer; restore liked flags for the
		// authenticated user
		if in.CurrentUserID != 0 {
			for i := range pins {
				liked, likedErr := s.pinRepo.IsLiked(ctx, in.CurrentUserID, pins[i].ID)
				if likedErr != nil {
					return nil, likedErr
				}
				pins[i].Liked = liked
			}
		}
	} else {
		pins, err = s.pinRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
		if err != nil {
			return nil, err
		}
	}

	for i := range pins {
		s.normalize(&pins[i])
	}
	return pins, nil
}

func (s *PinService) GetUserPins(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Pin, error) {
	pins, err := s.pinRepo.ListByUser(ctx, userID, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}
	for i := range pins {
		s.normalize(&pins[i])
	}
	return pins, nil
}

// UpdatePin edits a pin's title and description. The image reference and
// the creator are immutable.
func (s *PinService) UpdatePin(ctx context.Context, in UpdatePinInput) (*models.Pin, error) {
	pin, err := s.pinRepo.GetByID(ctx, in.PinID, in.UserID)
	if err != nil {
		return nil, err
	}

	if pin.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own pins")
	}

	if in.Title != "" {
		if len(in.Title) > models.MaxPinTitleLen {
			return nil, models.NewValidationError(fmt.Sprintf("Title too long (max %d characters)", models.MaxPinTitleLen))
		}
		pin.Title = in.Title
	}
	if in.Description != "" {
		if len(in.Description) > models.MaxPinDescriptionLen {
			return nil, models.NewValidationError(fmt.Sprintf("Description too long (max %d characters)", models.MaxPinDescriptionLen))
		}
		pin.Description = in.Description
	}

	if err := s.pinRepo.Update(ctx, pin); err != nil {
		return nil, err
	}
	s.normalize(pin)
	return pin, nil
}

func (s *PinService) DeletePin(ctx context.Context, in DeletePinInput) error {
	pin, err := s.pinRepo.GetByID(ctx, in.PinID, in.UserID)
	if err != nil {
		return err
	}

	if pin.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own pins")
	}

	return s.pinRepo.Delete(ctx, in.PinID)
}

func (s *PinService) normalize(pin *models.Pin) {
	pin.ImageURL = media.NormalizeURL(s.baseURL, pin.ImageURL)
}
