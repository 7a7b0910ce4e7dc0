package service

import (
	"context"

	"pinboard/internal/repository"
)

type LikeService struct {
	pinRepo repository.PinRepository
}

// ToggleResult is the outcome of flipping a like.
type ToggleResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

func NewLikeService(pinRepo repository.PinRepository) *LikeService {
	return &LikeService{pinRepo: pinRepo}
}

// Toggle flips the (user, pin) like: liked becomes unliked and vice
// versa. Own pins are likeable.
func (s *LikeService) Toggle(ctx context.Context, userID, pinID uint) (*ToggleResult, error) {
	if _, err := s.pinRepo.GetByID(ctx, pinID, 0); err != nil {
		return nil, err
	}

	isLiked, err := s.pinRepo.IsLiked(ctx, userID, pinID)
	if err != nil {
		return nil, err
	}

	if isLiked {
		if err := s.pinRepo.Unlike(ctx, userID, pinID); err != nil {
			return nil, err
		}
	} else {
		if err := s.pinRepo.Like(ctx, userID, pinID); err != nil {
			return nil, err
		}
	}

	count, err := s.pinRepo.CountLikes(ctx, pinID)
	if err != nil {
		return nil, err
	}
	return &ToggleResult{Liked: !isLiked, LikesCount: count}, nil
}
