package vote

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

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	UpsertFunc                 func(ctx context.Context, categoryID, userID, gameID int64) error
	DeleteFunc                 func(ctx context.Context, categoryID, userID int64) error
	GameIDForUserFunc          func(ctx context.Context, categoryID, userID int64) (*int64, error)
	CategoryIDsForUserYearFunc func(ctx context.Context, userID int64, year int) ([]int64, error)

	calls struct {
		Upsert []struct {
			CategoryID int64
			UserID     int64
			GameID     int64
		}
		Delete []struct {
			CategoryID int64
			UserID     int64
		}
	}
	lock sync.RWMutex
}

func (mock *voteRepoMock) Upsert(ctx context.Context, categoryID, userID, gameID int64) error {
	if mock.UpsertFunc == nil {
		panic("voteRepoMock.UpsertFunc: method is nil but voteRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct {
		CategoryID int64
		UserID     int64
		GameID     int64
	}{categoryID, userID, gameID})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, categoryID, userID, gameID)
}

func (mock *voteRepoMock) UpsertCalls() []struct {
	CategoryID int64
	UserID     int64
	GameID     int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

func (mock *voteRepoMock) Delete(ctx context.Context, categoryID, userID int64) error {
	if mock.DeleteFunc == nil {
		panic("voteRepoMock.DeleteFunc: method is nil but voteRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		CategoryID int64
		UserID     int64
	}{categoryID, userID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, categoryID, userID)
}

func (mock *voteRepoMock) GameIDForUser(ctx context.Context, categoryID, userID int64) (*int64, error) {
	if mock.GameIDForUserFunc == nil {
		panic("voteRepoMock.GameIDForUserFunc: method is nil but voteRepo.GameIDForUser was just called")
	}
	return mock.GameIDForUserFunc(ctx, categoryID, userID)
}

func (mock *voteRepoMock) CategoryIDsForUserYear(ctx context.Context, userID int64, year int) ([]int64, error) {
	if mock.CategoryIDsForUserYearFunc == nil {
		panic("voteRepoMock.CategoryIDsForUserYearFunc: method is nil but voteRepo.CategoryIDsForUserYear was just called")
	}
	return mock.CategoryIDsForUserYearFunc(ctx, userID, year)
}

var _ finalistSelector = &finalistSelectorMock{}

type finalistSelectorMock struct {
	FinalistsFunc func(ctx context.Context, categoryID int64) ([]domain.Finalist, error)
}

func (mock *finalistSelectorMock) Finalists(ctx context.Context, categoryID int64) ([]domain.Finalist, error) {
	if mock.FinalistsFunc == nil {
		panic("finalistSelectorMock.FinalistsFunc: method is nil but finalistSelector.Finalists was just called")
	}
	return mock.FinalistsFunc(ctx, categoryID)
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
