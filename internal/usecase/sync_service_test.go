package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rbarros/matchday/internal/domain/competition"
	"github.com/rbarros/matchday/internal/domain/fixture"
	"github.com/rbarros/matchday/internal/domain/league"
	"github.com/rbarros/matchday/internal/platform/logging"
)

type stubProvider struct {
	fixtures []ExternalFixture
	teams    []ExternalTeam
	err      error

	lastTeamID   int64
	lastLeagueID int64
	lastSeason   int
}

func (p *stubProvider) FetchTeamFixtures(_ context.Context, teamID, leagueID int64, season int) ([]ExternalFixture, error) {
	p.lastTeamID = teamID
	p.lastLeagueID = leagueID
	p.lastSeason = season
	if p.err != nil {
		return nil, p.err
	}
	return p.fixtures, nil
}

func (p *stubProvider) FetchFixtureByID(_ context.Context, fixtureID int64) (ExternalFixture, bool, error) {
	if p.err != nil {
		return ExternalFixture{}, false, p.err
	}
	for _, item := range p.fixtures {
		if item.FixtureID == fixtureID {
			return item, true, nil
		}
	}
	return ExternalFixture{}, false, nil
}

func (p *stubProvider) SearchTeams(_ context.Context, _, _ string) ([]ExternalTeam, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.teams, nil
}

type stubFixtureRepo struct {
	upserts   []fixture.Fixture
	failAfter int
	upsertErr error
	views     []fixture.View
	listErr   error
}

func (r *stubFixtureRepo) Upsert(_ context.Context, f fixture.Fixture) error {
	if r.upsertErr != nil && len(r.upserts) >= r.failAfter {
		return r.upsertErr
	}
	r.upserts = append(r.upserts, f)
	return nil
}

func (r *stubFixtureRepo) GetByID(_ context.Context, fixtureID int64) (fixture.View, bool, error) {
	for _, v := range r.views {
		if v.FixtureID == fixtureID {
			return v, true, nil
		}
	}
	return fixture.View{}, false, nil
}

func (r *stubFixtureRepo) List(_ context.Context, _ fixture.Filter) ([]fixture.View, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.views, nil
}

type stubLeagueRepo struct {
	upserts []league.League
	err     error
}

func (r *stubLeagueRepo) Upsert(_ context.Context, l league.League) error {
	if r.err != nil {
		return r.err
	}
	r.upserts = append(r.upserts, l)
	return nil
}

func (r *stubLeagueRepo) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	for _, l := range r.upserts {
		if l.LeagueID == leagueID {
			return l, true, nil
		}
	}
	return league.League{}, false, nil
}

func externalFixtureForTest(id int64, status string) ExternalFixture {
	return ExternalFixture{
		FixtureID:    id,
		KickoffAt:    time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC),
		Timestamp:    1746905400,
		Venue:        "Maracanã",
		VenueCity:    "Rio de Janeiro",
		StatusShort:  status,
		StatusLong:   "Match Finished",
		LeagueName:   "Brasileirão Série A",
		Season:       2025,
		Round:        "Regular Season - 8",
		HomeTeamID:   127,
		HomeTeamName: "Flamengo",
		AwayTeamID:   131,
		AwayTeamName: "Corinthians",
	}
}

func TestSyncTeamFixturesReconcilesAll(t *testing.T) {
	provider := &stubProvider{fixtures: []ExternalFixture{
		externalFixtureForTest(1001, "FT"),
		externalFixtureForTest(1002, "NS"),
		externalFixtureForTest(1003, "1H"),
	}}
	fixtureRepo := &stubFixtureRepo{}
	leagueRepo := &stubLeagueRepo{}

	svc := NewSyncService(provider, fixtureRepo, leagueRepo, competition.DefaultTable(),
		SyncConfig{Enabled: true, DefaultSeason: 2025}, logging.NewNop())

	result, err := svc.SyncTeamFixtures(context.Background(), SyncRequest{
		CompetitionKey: "brasileirao_a",
		TeamID:         127,
	})
	if err != nil {
		t.Fatalf("SyncTeamFixtures error: %v", err)
	}

	if result.Fetched != 3 || result.Reconciled != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if provider.lastTeamID != 127 || provider.lastLeagueID != 71 || provider.lastSeason != 2025 {
		t.Fatalf("unexpected provider call: team=%d league=%d season=%d",
			provider.lastTeamID, provider.lastLeagueID, provider.lastSeason)
	}
	if len(fixtureRepo.upserts) != 3 {
		t.Fatalf("expected 3 upserts, got %d", len(fixtureRepo.upserts))
	}
	if got := fixtureRepo.upserts[0].Status; got != fixture.StatusFinished {
		t.Fatalf("expected finished status, got %s", got)
	}
	if got := fixtureRepo.upserts[1].Status; got != fixture.StatusScheduled {
		t.Fatalf("expected scheduled status, got %s", got)
	}
	if got := fixtureRepo.upserts[2].Status; got != fixture.StatusInProgress {
		t.Fatalf("expected in_progress status, got %s", got)
	}
	if len(leagueRepo.upserts) != 1 || leagueRepo.upserts[0].LeagueID != 71 {
		t.Fatalf("expected one league upsert for league 71, got %+v", leagueRepo.upserts)
	}
}

func TestSyncTeamFixturesUnknownCompetitionWritesNothing(t *testing.T) {
	provider := &stubProvider{fixtures: []ExternalFixture{externalFixtureForTest(1001, "FT")}}
	fixtureRepo := &stubFixtureRepo{}
	leagueRepo := &stubLeagueRepo{}

	svc := NewSyncService(provider, fixtureRepo, leagueRepo, competition.DefaultTable(),
		SyncConfig{Enabled: true, DefaultSeason: 2025}, logging.NewNop())

	_, err := svc.SyncTeamFixtures(context.Background(), SyncRequest{
		CompetitionKey: "premier_league",
		TeamID:         127,
	})
	if !errors.Is(err, ErrUnknownCompetition) {
		t.Fatalf("expected ErrUnknownCompetition, got %v", err)
	}
	if len(fixtureRepo.upserts) != 0 || len(leagueRepo.upserts) != 0 {
		t.Fatalf("unknown competition must not write anything")
	}
	if provider.lastTeamID != 0 {
		t.Fatalf("unknown competition must not hit the provider")
	}
}

func TestSyncTeamFixturesSurfacesProviderFailure(t *testing.T) {
	provider := &stubProvider{err: fmt.Errorf("connect: network is unreachable")}
	svc := NewSyncService(provider, &stubFixtureRepo{}, &stubLeagueRepo{}, competition.DefaultTable(),
		SyncConfig{Enabled: true, DefaultSeason: 2025}, logging.NewNop())

	result, err := svc.SyncTeamFixtures(context.Background(), SyncRequest{
		CompetitionKey: "libertadores",
		TeamID:         127,
	})
	if err == nil {
		t.Fatalf("expected provider failure to surface")
	}
	if result.Fetched != 0 || result.Reconciled != 0 {
		t.Fatalf("unexpected result on provider failure: %+v", result)
	}
}

func TestSyncTeamFixturesKeepsPartialProgress(t *testing.T) {
	provider := &stubProvider{fixtures: []ExternalFixture{
		externalFixtureForTest(1001, "FT"),
		externalFixtureForTest(1002, "FT"),
		externalFixtureForTest(1003, "FT"),
	}}
	fixtureRepo := &stubFixtureRepo{failAfter: 2, upsertErr: fmt.Errorf("connection reset")}
	leagueRepo := &stubLeagueRepo{}

	svc := NewSyncService(provider, fixtureRepo, leagueRepo, competition.DefaultTable(),
		SyncConfig{Enabled: true, DefaultSeason: 2025}, logging.NewNop())

	result, err := svc.SyncTeamFixtures(context.Background(), SyncRequest{
		CompetitionKey: "brasileirao_a",
		TeamID:         127,
	})
	if err == nil {
		t.Fatalf("expected upsert failure to surface")
	}
	if result.Reconciled != 2 {
		t.Fatalf("expected 2 reconciled before failure, got %d", result.Reconciled)
	}
	if len(fixtureRepo.upserts) != 2 {
		t.Fatalf("expected rows written before the failure to stay, got %d", len(fixtureRepo.upserts))
	}
}

func TestSyncTeamFixturesDisabled(t *testing.T) {
	svc := NewSyncService(&stubProvider{}, &stubFixtureRepo{}, &stubLeagueRepo{}, competition.DefaultTable(),
		SyncConfig{Enabled: false, DefaultSeason: 2025}, logging.NewNop())

	_, err := svc.SyncTeamFixtures(context.Background(), SyncRequest{
		CompetitionKey: "brasileirao_a",
		TeamID:         127,
	})
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSyncTeamFixturesSeasonValidation(t *testing.T) {
	svc := NewSyncService(&stubProvider{}, &stubFixtureRepo{}, &stubLeagueRepo{}, competition.DefaultTable(),
		SyncConfig{Enabled: true}, logging.NewNop())

	_, err := svc.SyncTeamFixtures(context.Background(), SyncRequest{
		CompetitionKey: "brasileirao_a",
		TeamID:         127,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without season, got %v", err)
	}
}

func TestMapExternalFixtureDefaults(t *testing.T) {
	comp, _ := competition.DefaultTable().Resolve("copa_do_brasil")
	item := ExternalFixture{
		FixtureID:   2001,
		KickoffAt:   time.Date(2025, 7, 1, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600)),
		StatusShort: "TBD",
	}

	mapped := mapExternalFixtureToDomain(item, comp, 2025)
	if mapped.Venue != "N/A" || mapped.VenueCity != "N/A" {
		t.Fatalf("expected venue placeholders, got %q / %q", mapped.Venue, mapped.VenueCity)
	}
	if mapped.LeagueID != 73 || mapped.LeagueName != "Copa do Brasil" {
		t.Fatalf("expected competition fallback, got league_id=%d name=%q", mapped.LeagueID, mapped.LeagueName)
	}
	if mapped.Season != 2025 {
		t.Fatalf("expected season fallback, got %d", mapped.Season)
	}
	if mapped.Status != fixture.StatusScheduled {
		t.Fatalf("unexpected status: %s", mapped.Status)
	}
	if mapped.Date.Location() != time.UTC {
		t.Fatalf("expected kickoff normalized to UTC")
	}
}
