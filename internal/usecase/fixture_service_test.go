package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rbarros/matchday/internal/domain/fixture"
)

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := NewFixtureService(&stubFixtureRepo{})

	_, err := svc.List(context.Background(), fixture.Filter{Status: "cancelled"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListCapsLimit(t *testing.T) {
	repo := &stubFixtureRepo{}
	svc := NewFixtureService(repo)

	if _, err := svc.List(context.Background(), fixture.Filter{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
	if _, err := svc.List(context.Background(), fixture.Filter{Status: fixture.StatusFinished}); err != nil {
		t.Fatalf("List error: %v", err)
	}
}

func TestGetFixture(t *testing.T) {
	repo := &stubFixtureRepo{views: []fixture.View{
		{Fixture: fixture.Fixture{FixtureID: 1001, HomeTeamName: "Flamengo"}, Attended: true},
	}}
	svc := NewFixtureService(repo)

	view, err := svc.Get(context.Background(), 1001)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if view.HomeTeamName != "Flamengo" || !view.Attended {
		t.Fatalf("unexpected view: %+v", view)
	}

	if _, err := svc.Get(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
