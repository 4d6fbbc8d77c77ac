package stats

import (
	"context"

	"github.com/pixelaward/goty-backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc      func(ctx context.Context, categoryID int64) (*domain.Category, error)
	CountByPhaseFunc func(ctx context.Context, year int) (map[domain.Phase]int, error)
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, categoryID)
}

func (mock *categoryRepoMock) CountByPhase(ctx context.Context, year int) (map[domain.Phase]int, error) {
	if mock.CountByPhaseFunc == nil {
		panic("categoryRepoMock.CountByPhaseFunc: method is nil but categoryRepo.CountByPhase was just called")
	}
	return mock.CountByPhaseFunc(ctx, year)
}

var _ nominationRepo = &nominationRepoMock{}

type nominationRepoMock struct {
	CountByCategoryFunc func(ctx context.Context, categoryID int64) (int, error)
}

func (mock *nominationRepoMock) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	if mock.CountByCategoryFunc == nil {
		panic("nominationRepoMock.CountByCategoryFunc: method is nil but nominationRepo.CountByCategory was just called")
	}
	return mock.CountByCategoryFunc(ctx, categoryID)
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

var _ tallier = &tallierMock{}

type tallierMock struct {
	TallyFunc func(ctx context.Context, categoryID int64) (*domain.TallyResult, error)
}

func (mock *tallierMock) Tally(ctx context.Context, categoryID int64) (*domain.TallyResult, error) {
	if mock.TallyFunc == nil {
		panic("tallierMock.TallyFunc: method is nil but tallier.Tally was just called")
	}
	return mock.TallyFunc(ctx, categoryID)
}
