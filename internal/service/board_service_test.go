package service

import (
	"context"
	"strings"
	"testing"

	"pinboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardRepoStub is a stub for repository.BoardRepository.
type boardRepoStub struct {
	createFn          func(context.Context, *models.Board) error
	getByIDFn         func(context.Context, uint) (*models.Board, error)
	getByIDWithPinsFn func(context.Context, uint, uint) (*models.Board, error)
	listByOwnerFn     func(context.Context, uint, int) ([]models.Board, error)
	updateFn          func(context.Context, *models.Board) error
	deleteFn          func(context.Context, uint) error
	attachPinFn       func(context.Context, uint, uint) error
	detachPinFn       func(context.Context, uint, uint) error
	listPinsFn        func(context.Context, uint, int, uint) ([]models.Pin, error)
}

func (s *boardRepoStub) Create(ctx context.Context, board *models.Board) error {
	return s.createFn(ctx, board)
}
func (s *boardRepoStub) GetByID(ctx context.Context, id uint) (*models.Board, error) {
	return s.getByIDFn(ctx, id)
}
func (s *boardRepoStub) GetByIDWithPins(ctx context.Context, id, currentUserID uint) (*models.Board, error) {
	return s.getByIDWithPinsFn(ctx, id, currentUserID)
}
func (s *boardRepoStub) ListByOwner(ctx context.Context, userID uint, coverLimit int) ([]models.Board, error) {
	return s.listByOwnerFn(ctx, userID, coverLimit)
}
func (s *boardRepoStub) Update(ctx context.Context, board *models.Board) error {
	return s.updateFn(ctx, board)
}
func (s *boardRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *boardRepoStub) AttachPin(ctx context.Context, boardID, pinID uint) error {
	return s.attachPinFn(ctx, boardID, pinID)
}
func (s *boardRepoStub) DetachPin(ctx context.Context, boardID, pinID uint) error {
	return s.detachPinFn(ctx, boardID, pinID)
}
func (s *boardRepoStub) ListPins(ctx context.Context, boardID uint, limit int, currentUserID uint) ([]models.Pin, error) {
	return s.listPinsFn(ctx, boardID, limit, currentUserID)
}
func noopBoardRepo() *boardRepoStub {
	return &boardRepoStub{
		createFn:          func(_ context.Context, _ *models.Board) error { return nil },
		getByIDFn:         func(_ context.Context, _ uint) (*models.Board, error) { return &models.Board{}, nil },
		getByIDWithPinsFn: func(_ context.Context, _, _ uint) (*models.Board, error) { return &models.Board{}, nil },
		listByOwnerFn:     func(_ context.Context, _ uint, _ int) ([]models.Board, error) { return nil, nil },
		updateFn:          func(_ context.Context, _ *models.Board) error { return nil },
		deleteFn:          func(_ context.Context, _ uint) error { return nil },
		attachPinFn:       func(_ context.Context, _, _ uint) error { return nil },
		detachPinFn:       func(_ context.Context, _, _ uint) error { return nil },
		listPinsFn:        func(_ context.Context, _ uint, _ int, _ uint) ([]models.Pin, error) { return nil, nil },
	}
}

func ownedBoardRepo(ownerID uint) *boardRepoStub {
	repo := noopBoardRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Board, error) {
		return &models.Board{ID: id, UserID: ownerID, Name: "Board"}, nil
	}
	repo.getByIDWithPinsFn = func(_ context.Context, id, _ uint) (*models.Board, error) {
		return &models.Board{ID: id, UserID: ownerID, Name: "Board"}, nil
	}
	return repo
}

func TestBoardService_CreateBoard_Validation(t *testing.T) {
	t.Parallel()
	svc := NewBoardService(noopBoardRepo(), noopPinRepo(), "")
	ctx := context.Background()

	_, err := svc.CreateBoard(ctx, CreateBoardInput{UserID: 1})
	assertValidationError(t, err)

	_, err = svc.CreateBoard(ctx, CreateBoardInput{UserID: 1, Name: strings.Repeat("a", models.MaxBoardNameLen+1)})
	assertValidationError(t, err)
}

func TestBoardService_GetBoard_OwnerOnly(t *testing.T) {
	t.Parallel()
	svc := NewBoardService(ownedBoardRepo(2), noopPinRepo(), "")
	ctx := context.Background()

	_, err := svc.GetBoard(ctx, 1, 1)
	assertUnauthorizedError(t, err)

	board, err := svc.GetBoard(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), board.UserID)
}

func TestBoardService_GetBoard_LoadsPins(t *testing.T) {
	t.Parallel()
	repo := ownedBoardRepo(2)
	repo.getByIDWithPinsFn = func(_ context.Context, id, viewerID uint) (*models.Board, error) {
		assert.Equal(t, uint(2), viewerID)
		return &models.Board{
			ID: id, UserID: 2, Name: "Board",
			Pins: []models.Pin{{ID: 7, ImageURL: "/storage/pins/a.jpg"}},
		}, nil
	}
	svc := NewBoardService(repo, noopPinRepo(), "https://pins.example.com")

	board, err := svc.GetBoard(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, board.Pins, 1)
	assert.Equal(t, "https://pins.example.com/storage/pins/a.jpg", board.Pins[0].ImageURL)
}

func TestBoardService_GetBoard_MissingBeforeOwnership(t *testing.T) {
	t.Parallel()
	repo := noopBoardRepo()
	repo.getByIDWithPinsFn = func(_ context.Context, id, _ uint) (*models.Board, error) {
		return nil, models.NewNotFoundError("Board", id)
	}
	svc := NewBoardService(repo, noopPinRepo(), "")

	// a stranger probing a missing board sees 404, not 403
	_, err := svc.GetBoard(context.Background(), 99, 1)
	assertNotFoundError(t, err)
}

func TestBoardService_AttachPin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner attaches", func(t *testing.T) {
		repo := ownedBoardRepo(1)
		attached := false
		repo.attachPinFn = func(_ context.Context, boardID, pinID uint) error {
			attached = true
			assert.Equal(t, uint(5), boardID)
			assert.Equal(t, uint(9), pinID)
			return nil
		}
		svc := NewBoardService(repo, noopPinRepo(), "")
		require.NoError(t, svc.AttachPin(ctx, AttachPinInput{ActorID: 1, BoardID: 5, PinID: 9}))
		assert.True(t, attached)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		svc := NewBoardService(ownedBoardRepo(2), noopPinRepo(), "")
		err := svc.AttachPin(ctx, AttachPinInput{ActorID: 1, BoardID: 5, PinID: 9})
		assertUnauthorizedError(t, err)
	})

	t.Run("missing pin rejected", func(t *testing.T) {
		pinRepo := noopPinRepo()
		pinRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Pin, error) {
			return nil, models.NewNotFoundError("Pin", id)
		}
		svc := NewBoardService(ownedBoardRepo(1), pinRepo, "")
		err := svc.AttachPin(ctx, AttachPinInput{ActorID: 1, BoardID: 5, PinID: 9})
		assertNotFoundError(t, err)
	})

	t.Run("missing board rejected before ownership", func(t *testing.T) {
		repo := noopBoardRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Board, error) {
			return nil, models.NewNotFoundError("Board", id)
		}
		svc := NewBoardService(repo, noopPinRepo(), "")
		err := svc.AttachPin(ctx, AttachPinInput{ActorID: 1, BoardID: 99, PinID: 9})
		assertNotFoundError(t, err)
	})
}

func TestBoardService_DetachPin_OwnerOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := ownedBoardRepo(1)
	detached := false
	repo.detachPinFn = func(_ context.Context, _, _ uint) error {
		detached = true
		return nil
	}
	svc := NewBoardService(repo, noopPinRepo(), "")

	err := svc.DetachPin(ctx, DetachPinInput{ActorID: 2, BoardID: 5, PinID: 9})
	assertUnauthorizedError(t, err)
	assert.False(t, detached)

	require.NoError(t, svc.DetachPin(ctx, DetachPinInput{ActorID: 1, BoardID: 5, PinID: 9}))
	assert.True(t, detached)
}

func TestBoardService_SavePin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("saves to own board", func(t *testing.T) {
		repo := ownedBoardRepo(1)
		attached := false
		repo.attachPinFn = func(_ context.Context, _, _ uint) error {
			attached = true
			return nil
		}
		svc := NewBoardService(repo, noopPinRepo(), "")
		require.NoError(t, svc.SavePin(ctx, 9, 5, 1))
		assert.True(t, attached)
	})

	t.Run("cannot save to someone else's board", func(t *testing.T) {
		svc := NewBoardService(ownedBoardRepo(2), noopPinRepo(), "")
		err := svc.SavePin(ctx, 9, 5, 1)
		assertUnauthorizedError(t, err)
	})

	t.Run("missing pin", func(t *testing.T) {
		pinRepo := noopPinRepo()
		pinRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Pin, error) {
			return nil, models.NewNotFoundError("Pin", id)
		}
		svc := NewBoardService(ownedBoardRepo(1), pinRepo, "")
		err := svc.SavePin(ctx, 9, 5, 1)
		assertNotFoundError(t, err)
	})
}

func TestBoardService_DeleteBoard_OwnerOnly(t *testing.T) {
	t.Parallel()
	repo := ownedBoardRepo(3)
	deleted := false
	repo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewBoardService(repo, noopPinRepo(), "")

	err := svc.DeleteBoard(context.Background(), DeleteBoardInput{UserID: 1, BoardID: 5})
	assertUnauthorizedError(t, err)
	assert.False(t, deleted)

	require.NoError(t, svc.DeleteBoard(context.Background(), DeleteBoardInput{UserID: 3, BoardID: 5}))
	assert.True(t, deleted)
}
