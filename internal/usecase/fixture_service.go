package usecase

import (
	"context"
	"fmt"

	"github.com/rbarros/matchday/internal/domain/fixture"
)

const maxListLimit = 500

type FixtureService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{fixtureRepo: fixtureRepo}
}

func (s *FixtureService) List(ctx context.Context, filter fixture.Filter) ([]fixture.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.List")
	defer span.End()

	if filter.TeamID < 0 {
		return nil, fmt.Errorf("%w: team id must not be negative", ErrInvalidInput)
	}
	if filter.Status != "" && !fixture.IsValidStatus(filter.Status) {
		return nil, fmt.Errorf("%w: status=%q", ErrInvalidInput, filter.Status)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	views, err := s.fixtureRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	return views, nil
}

func (s *FixtureService) Get(ctx context.Context, fixtureID int64) (fixture.View, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Get")
	defer span.End()

	if fixtureID <= 0 {
		return fixture.View{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	view, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.View{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.View{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, fixtureID)
	}

	return view, nil
}
