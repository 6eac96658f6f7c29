package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rbarros/matchday/internal/domain/team"
	"github.com/rbarros/matchday/internal/platform/logging"
)

type stubTeamRepo struct {
	upserts []team.Team
	err     error
}

func (r *stubTeamRepo) Upsert(_ context.Context, t team.Team) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, t)
	return nil
}

func (r *stubTeamRepo) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	for _, t := range r.upserts {
		if t.TeamID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func TestSearchPersistsMatches(t *testing.T) {
	provider := &stubProvider{teams: []ExternalTeam{
		{TeamID: 127, Name: "Flamengo", Country: "Brazil", Founded: 1895},
		{TeamID: 0, Name: "ghost row"},
		{TeamID: 131, Name: "Corinthians", Country: "Brazil", Founded: 1910},
	}}
	repo := &stubTeamRepo{}
	svc := NewTeamService(provider, repo, TeamSearchConfig{Enabled: true, DefaultCountry: "Brazil"}, logging.NewNop())

	teams, err := svc.Search(context.Background(), "flamengo", "")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams after dropping the invalid row, got %d", len(teams))
	}
	if len(repo.upserts) != 2 {
		t.Fatalf("expected 2 persisted teams, got %d", len(repo.upserts))
	}

	found, err := svc.Lookup(context.Background(), 127)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if found.Name != "Flamengo" {
		t.Fatalf("unexpected team: %+v", found)
	}
}

func TestSearchValidation(t *testing.T) {
	svc := NewTeamService(&stubProvider{}, &stubTeamRepo{}, TeamSearchConfig{Enabled: true}, logging.NewNop())

	if _, err := svc.Search(context.Background(), "   ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}

	disabled := NewTeamService(&stubProvider{}, &stubTeamRepo{}, TeamSearchConfig{Enabled: false}, logging.NewNop())
	if _, err := disabled.Search(context.Background(), "flamengo", ""); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable when disabled, got %v", err)
	}
}

func TestLookupMissingTeam(t *testing.T) {
	svc := NewTeamService(&stubProvider{}, &stubTeamRepo{}, TeamSearchConfig{Enabled: true}, logging.NewNop())

	if _, err := svc.Lookup(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
