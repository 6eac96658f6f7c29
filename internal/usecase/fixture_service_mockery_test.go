package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rbarros/matchday/internal/domain/fixture"
	fixturemock "github.com/rbarros/matchday/internal/mocks/domain/fixture"
)

func TestFixtureService_List_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtureRepo := fixturemock.NewRepository(t)

	service := NewFixtureService(fixtureRepo)
	filter := fixture.Filter{TeamID: 127, Status: fixture.StatusFinished, Limit: 10}
	expected := []fixture.View{
		{
			Fixture: fixture.Fixture{
				FixtureID:    1187061,
				Date:         time.Date(2025, 5, 10, 22, 30, 0, 0, time.UTC),
				Venue:        "Maracanã",
				VenueCity:    "Rio de Janeiro",
				Status:       fixture.StatusFinished,
				HomeTeamID:   127,
				HomeTeamName: "Flamengo",
				AwayTeamID:   124,
				AwayTeamName: "Fluminense",
			},
		},
	}

	fixtureRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v != nil }), filter).
		Return(expected, nil).
		Once()

	got, err := service.List(ctx, filter)
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected fixture count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].FixtureID != expected[0].FixtureID {
		t.Fatalf("unexpected fixture id: got=%d want=%d", got[0].FixtureID, expected[0].FixtureID)
	}
}

func TestFixtureService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fixtureRepo := fixturemock.NewRepository(t)

	service := NewFixtureService(fixtureRepo)

	fixtureRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), int64(404404)).
		Return(fixture.View{}, false, nil).
		Once()

	_, err := service.Get(ctx, 404404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
