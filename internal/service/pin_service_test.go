package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pinboard/internal/cache"
	"pinboard/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinRepoStub is a stub for repository.PinRepository.
type pinRepoStub struct {
	createFn     func(context.Context, *models.Pin) error
	getByIDFn    func(context.Context, uint, uint) (*models.Pin, error)
	listFn       func(context.Context, int, int, uint) ([]models.Pin, error)
	listByUserFn func(context.Context, uint, int, int, uint) ([]models.Pin, error)
	updateFn     func(context.Context, *models.Pin) error
	deleteFn     func(context.Context, uint) error
	likeFn       func(context.Context, uint, uint) error
	unlikeFn     func(context.Context, uint, uint) error
	isLikedFn    func(context.Context, uint, uint) (bool, error)
	countLikesFn func(context.Context, uint) (int64, error)
}

func (s *pinRepoStub) Create(ctx context.Context, pin *models.Pin) error {
	return s.createFn(ctx, pin)
}
func (s *pinRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Pin, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *pinRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]models.Pin, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *pinRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.Pin, error) {
	return s.listByUserFn(ctx, userID, limit, offset, currentUserID)
}
func (s *pinRepoStub) Update(ctx context.Context, pin *models.Pin) error {
	return s.updateFn(ctx, pin)
}
func (s *pinRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *pinRepoStub) Like(ctx context.Context, userID, pinID uint) error {
	return s.likeFn(ctx, userID, pinID)
}
func (s *pinRepoStub) Unlike(ctx context.Context, userID, pinID uint) error {
	return s.unlikeFn(ctx, userID, pinID)
}
func (s *pinRepoStub) IsLiked(ctx context.Context, userID, pinID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, pinID)
}
func (s *pinRepoStub) CountLikes(ctx context.Context, pinID uint) (int64, error) {
	return s.countLikesFn(ctx, pinID)
}

func noopPinRepo() *pinRepoStub {
	return &pinRepoStub{
		createFn:     func(_ context.Context, _ *models.Pin) error { return nil },
		getByIDFn:    func(_ context.Context, _, _ uint) (*models.Pin, error) { return &models.Pin{}, nil },
		listFn:       func(_ context.Context, _, _ int, _ uint) ([]models.Pin, error) { return nil, nil },
		listByUserFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]models.Pin, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Pin) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
		likeFn:       func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:     func(_ context.Context, _, _ uint) error { return nil },
		isLikedFn:    func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countLikesFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPinService_CreatePin_Validation(t *testing.T) {
	t.Parallel()
	svc := NewPinService(noopPinRepo(), "https://pins.example.com")
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreatePinInput
	}{
		{"missing title", CreatePinInput{UserID: 1, ImageURL: "https://cdn.example.com/a.jpg"}},
		{"title too long", CreatePinInput{UserID: 1, Title: strings.Repeat("a", models.MaxPinTitleLen+1), ImageURL: "https://cdn.example.com/a.jpg"}},
		{"description too long", CreatePinInput{UserID: 1, Title: "ok", Description: strings.Repeat("a", models.MaxPinDescriptionLen+1), ImageURL: "https://cdn.example.com/a.jpg"}},
		{"missing image", CreatePinInput{UserID: 1, Title: "ok"}},
		{"bad image url", CreatePinInput{UserID: 1, Title: "ok", ImageURL: "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePin(ctx, tt.in)
			assertValidationError(t, err)
		})
	}
}

func TestPinService_CreatePin_Success(t *testing.T) {
	t.Parallel()
	repo := noopPinRepo()
	var created *models.Pin
	repo.createFn = func(_ context.Context, pin *models.Pin) error {
		pin.ID = 42
		created = pin
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Pin, error) {
		require.Equal(t, uint(42), id)
		return created, nil
	}

	svc := NewPinService(repo, "https://pins.example.com")
	pin, err := svc.CreatePin(context.Background(), CreatePinInput{
		UserID:      7,
		Title:       "Sunset",
		Description: "golden hour",
		ImageURL:    "https://cdn.example.com/sunset.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), pin.ID)
	assert.Equal(t, uint(7), pin.UserID)
}

func TestPinService_UpdatePin_OwnershipAndImmutability(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-creator rejected", func(t *testing.T) {
		repo := noopPinRepo()
		repo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Pin, error) {
			return &models.Pin{ID: 1, UserID: 2}, nil
		}
		svc := NewPinService(repo, "")
		_, err := svc.UpdatePin(ctx, UpdatePinInput{UserID: 1, PinID: 1, Title: "steal"})
		assertUnauthorizedError(t, err)
	})

	t.Run("image reference survives update", func(t *testing.T) {
		repo := noopPinRepo()
		repo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Pin, error) {
			return &models.Pin{ID: 1, UserID: 1, Title: "old", ImageURL: "https://cdn.example.com/keep.jpg"}, nil
		}
		var saved *models.Pin
		repo.updateFn = func(_ context.Context, pin *models.Pin) error {
			saved = pin
			return nil
		}
		svc := NewPinService(repo, "")
		_, err := svc.UpdatePin(ctx, UpdatePinInput{UserID: 1, PinID: 1, Title: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", saved.Title)
		assert.Equal(t, "https://cdn.example.com/keep.jpg", saved.ImageURL)
	})

	t.Run("missing pin is not found", func(t *testing.T) {
		repo := noopPinRepo()
		repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Pin, error) {
			return nil, models.NewNotFoundError("Pin", id)
		}
		svc := NewPinService(repo, "")
		_, err := svc.UpdatePin(ctx, UpdatePinInput{UserID: 1, PinID: 99, Title: "x"})
		assertNotFoundError(t, err)
	})
}

func TestPinService_DeletePin_Ownership(t *testing.T) {
	t.Parallel()
	repo := noopPinRepo()
	repo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Pin, error) {
		return &models.Pin{ID: 1, UserID: 2}, nil
	}
	deleted := false
	repo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	svc := NewPinService(repo, "")
	err := svc.DeletePin(context.Background(), DeletePinInput{UserID: 1, PinID: 1})
	assertUnauthorizedError(t, err)
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePin(context.Background(), DeletePinInput{UserID: 2, PinID: 1}))
	assert.True(t, deleted)
}

// Only the default page size shares the feed cache entry; a shorter page
// must never populate it and later be served to a full-page request.
func TestPinService_ListPins_ShortPageDoesNotPoisonCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })

	repo := noopPinRepo()
	repo.listFn = func(_ context.Context, limit, _ int, _ uint) ([]models.Pin, error) {
		pins := make([]models.Pin, limit)
		for i := range pins {
			pins[i] = models.Pin{ID: uint(i + 1), Title: "p", ImageURL: "https://cdn.example.com/p.jpg"}
		}
		return pins, nil
	}

	svc := NewPinService(repo, "")
	ctx := context.Background()

	short, err := svc.ListPins(ctx, ListPinsInput{Limit: 5, Offset: 0})
	require.NoError(t, err)
	require.Len(t, short, 5)
	assert.False(t, mr.Exists(cache.PinsListKey))

	full, err := svc.ListPins(ctx, ListPinsInput{Limit: 20, Offset: 0})
	require.NoError(t, err)
	require.Len(t, full, 20)
	assert.True(t, mr.Exists(cache.PinsListKey))

	again, err := svc.ListPins(ctx, ListPinsInput{Limit: 20, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, again, 20)
}

func TestPinService_GetPin_NormalizesImageURL(t *testing.T) {
	t.Parallel()
	repo := noopPinRepo()
	repo.getByIDFn = func(_ context.Context, _, _ uint) (*models.Pin, error) {
		return &models.Pin{ID: 1, ImageURL: "http://localhost:8000/storage/pins/a.jpg"}, nil
	}

	svc := NewPinService(repo, "https://pins.example.com")
	pin, err := svc.GetPin(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://pins.example.com/storage/pins/a.jpg", pin.ImageURL)
}
