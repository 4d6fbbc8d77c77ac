package phase

import (
	"context"
	"sync"

	"github.com/pixelaward/goty-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc      func(ctx context.Context, categoryID int64) (*domain.Category, error)
	AdvancePhaseFunc func(ctx context.Context, categoryID int64, from, to domain.Phase) (bool, error)

	calls struct {
		GetByID []struct {
			CategoryID int64
		}
		AdvancePhase []struct {
			CategoryID int64
			From       domain.Phase
			To         domain.Phase
		}
	}
	lock sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ CategoryID int64 }{categoryID})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, categoryID)
}

func (mock *categoryRepoMock) AdvancePhase(ctx context.Context, categoryID int64, from, to domain.Phase) (bool, error) {
	if mock.AdvancePhaseFunc == nil {
		panic("categoryRepoMock.AdvancePhaseFunc: method is nil but categoryRepo.AdvancePhase was just called")
	}
	mock.lock.Lock()
	mock.calls.AdvancePhase = append(mock.calls.AdvancePhase, struct {
		CategoryID int64
		From       domain.Phase
		To         domain.Phase
	}{categoryID, from, to})
	mock.lock.Unlock()
	return mock.AdvancePhaseFunc(ctx, categoryID, from, to)
}

func (mock *categoryRepoMock) AdvancePhaseCalls() []struct {
	CategoryID int64
	From       domain.Phase
	To         domain.Phase
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AdvancePhase
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
