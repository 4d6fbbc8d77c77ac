package nomination

import (
	"context"
	"sync"

	"github.com/pixelaward/goty-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc       func(ctx context.Context, categoryID int64) (*domain.Category, error)
	PhaseForShareFunc func(ctx context.Context, categoryID int64) (domain.Phase, error)
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, categoryID)
}

func (mock *categoryRepoMock) PhaseForShare(ctx context.Context, categoryID int64) (domain.Phase, error) {
	if mock.PhaseForShareFunc == nil {
		panic("categoryRepoMock.PhaseForShareFunc: method is nil but categoryRepo.PhaseForShare was just called")
	}
	return mock.PhaseForShareFunc(ctx, categoryID)
}

var _ gameRepo = &gameRepoMock{}

type gameRepoMock struct {
	GetByIDFunc func(ctx context.Context, gameID int64) (*domain.Game, error)
}

func (mock *gameRepoMock) GetByID(ctx context.Context, gameID int64) (*domain.Game, error) {
	if mock.GetByIDFunc == nil {
		panic("gameRepoMock.GetByIDFunc: method is nil but gameRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, gameID)
}

var _ nominationRepo = &nominationRepoMock{}

type nominationRepoMock struct {
	AcquireUserLockFunc    func(ctx context.Context, categoryID, userID int64) error
	InsertFunc             func(ctx context.Context, categoryID, gameID, userID int64) error
	DeleteFunc             func(ctx context.Context, categoryID, gameID, userID int64) error
	CountForUserFunc       func(ctx context.Context, categoryID, userID int64) (int, error)
	ListGameIDsForUserFunc func(ctx context.Context, categoryID, userID int64) ([]int64, error)

	calls struct {
		Insert []struct {
			CategoryID int64
			GameID     int64
			UserID     int64
		}
		Delete []struct {
			CategoryID int64
			GameID     int64
			UserID     int64
		}
	}
	lock sync.RWMutex
}

func (mock *nominationRepoMock) AcquireUserLock(ctx context.Context, categoryID, userID int64) error {
	if mock.AcquireUserLockFunc == nil {
		panic("nominationRepoMock.AcquireUserLockFunc: method is nil but nominationRepo.AcquireUserLock was just called")
	}
	return mock.AcquireUserLockFunc(ctx, categoryID, userID)
}

func (mock *nominationRepoMock) Insert(ctx context.Context, categoryID, gameID, userID int64) error {
	if mock.InsertFunc == nil {
		panic("nominationRepoMock.InsertFunc: method is nil but nominationRepo.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		CategoryID int64
		GameID     int64
		UserID     int64
	}{categoryID, gameID, userID})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, categoryID, gameID, userID)
}

func (mock *nominationRepoMock) InsertCalls() []struct {
	CategoryID int64
	GameID     int64
	UserID     int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *nominationRepoMock) Delete(ctx context.Context, categoryID, gameID, userID int64) error {
	if mock.DeleteFunc == nil {
		panic("nominationRepoMock.DeleteFunc: method is nil but nominationRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		CategoryID int64
		GameID     int64
		UserID     int64
	}{categoryID, gameID, userID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, categoryID, gameID, userID)
}

func (mock *nominationRepoMock) CountForUser(ctx context.Context, categoryID, userID int64) (int, error) {
	if mock.CountForUserFunc == nil {
		panic("nominationRepoMock.CountForUserFunc: method is nil but nominationRepo.CountForUser was just called")
	}
	return mock.CountForUserFunc(ctx, categoryID, userID)
}

func (mock *nominationRepoMock) ListGameIDsForUser(ctx context.Context, categoryID, userID int64) ([]int64, error) {
	if mock.ListGameIDsForUserFunc == nil {
		panic("nominationRepoMock.ListGameIDsForUserFunc: method is nil but nominationRepo.ListGameIDsForUser was just called")
	}
	return mock.ListGameIDsForUserFunc(ctx, categoryID, userID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

// passthroughTx returns a txManagerMock that simply calls fn with the same context.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
