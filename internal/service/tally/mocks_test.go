package tally

import (
	"context"
	"sync"

	"github.com/pixelaward/goty-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc         func(ctx context.Context, categoryID int64) (*domain.Category, error)
	WinnerFunc          func(ctx context.Context, categoryID int64) (int64, error)
	DesignateWinnerFunc func(ctx context.Context, categoryID, gameID int64) error

	calls struct {
		DesignateWinner []struct {
			CategoryID int64
			GameID     int64
		}
	}
	lock sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, categoryID)
}

func (mock *categoryRepoMock) Winner(ctx context.Context, categoryID int64) (int64, error) {
	if mock.WinnerFunc == nil {
		panic("categoryRepoMock.WinnerFunc: method is nil but categoryRepo.Winner was just called")
	}
	return mock.WinnerFunc(ctx, categoryID)
}

func (mock *categoryRepoMock) DesignateWinner(ctx context.Context, categoryID, gameID int64) error {
	if mock.DesignateWinnerFunc == nil {
		panic("categoryRepoMock.DesignateWinnerFunc: method is nil but categoryRepo.DesignateWinner was just called")
	}
	mock.lock.Lock()
	mock.calls.DesignateWinner = append(mock.calls.DesignateWinner, struct {
		CategoryID int64
		GameID     int64
	}{categoryID, gameID})
	mock.lock.Unlock()
	return mock.DesignateWinnerFunc(ctx, categoryID, gameID)
}

func (mock *categoryRepoMock) DesignateWinnerCalls() []struct {
	CategoryID int64
	GameID     int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DesignateWinner
}

var _ voteRepo = &voteRepoMock{}

type voteRepoMock struct {
	CountsByGameFunc func(ctx context.Context, categoryID int64) (map[int64]int, error)
}

func (mock *voteRepoMock) CountsByGame(ctx context.Context, categoryID int64) (map[int64]int, error) {
	if mock.CountsByGameFunc == nil {
		panic("voteRepoMock.CountsByGameFunc: method is nil but voteRepo.CountsByGame was just called")
	}
	return mock.CountsByGameFunc(ctx, categoryID)
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

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
