package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rbarros/matchday/internal/domain/competition"
	"github.com/rbarros/matchday/internal/domain/fixture"
	"github.com/rbarros/matchday/internal/domain/league"
	"github.com/rbarros/matchday/internal/platform/logging"
)

type SyncConfig struct {
	Enabled       bool
	DefaultSeason int
}

// SyncRequest scopes one sync run to a team inside a supported competition.
// Season falls back to the configured default when zero.
type SyncRequest struct {
	CompetitionKey string
	TeamID         int64
	Season         int
}

// SyncResult reports how far a sync run got. On a partial failure Reconciled
// reflects the fixtures persisted before the failing one.
type SyncResult struct {
	Competition competition.Competition
	Season      int
	Fetched     int
	Reconciled  int
}

type SyncService struct {
	provider     SportDataProvider
	fixtureRepo  fixture.Repository
	leagueRepo   league.Repository
	competitions competition.Table
	cfg          SyncConfig
	logger       *logging.Logger
}

func NewSyncService(
	provider SportDataProvider,
	fixtureRepo fixture.Repository,
	leagueRepo league.Repository,
	competitions competition.Table,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if competitions == nil {
		competitions = competition.DefaultTable()
	}

	return &SyncService{
		provider:     provider,
		fixtureRepo:  fixtureRepo,
		leagueRepo:   leagueRepo,
		competitions: competitions,
		cfg:          cfg,
		logger:       logger,
	}
}

// SyncTeamFixtures pulls a team's fixtures for one competition season from the
// provider and reconciles them into local storage. Provider and storage
// failures surface as errors; a failure mid-run keeps the rows already
// written.
func (s *SyncService) SyncTeamFixtures(ctx context.Context, req SyncRequest) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTeamFixtures")
	defer span.End()

	if req.TeamID <= 0 {
		return SyncResult{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	comp, ok := s.competitions.Resolve(req.CompetitionKey)
	if !ok {
		return SyncResult{}, fmt.Errorf("%w: %q (supported: %s)",
			ErrUnknownCompetition, req.CompetitionKey, strings.Join(s.competitions.Keys(), ", "))
	}

	season := req.Season
	if season == 0 {
		season = s.cfg.DefaultSeason
	}
	if season <= 0 {
		return SyncResult{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	if !s.cfg.Enabled {
		s.logger.WarnContext(ctx, "skip fixture sync: sport data sync is disabled",
			"competition", comp.Key, "team_id", req.TeamID)
		return SyncResult{}, fmt.Errorf("%w: sport data sync is disabled (API_FOOTBALL_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: sport data provider is not configured", ErrDependencyUnavailable)
	}

	result := SyncResult{Competition: comp, Season: season}

	items, err := s.provider.FetchTeamFixtures(ctx, req.TeamID, comp.LeagueID, season)
	if err != nil {
		return result, fmt.Errorf("fetch fixtures from sport data provider team_id=%d league_id=%d season=%d: %w",
			req.TeamID, comp.LeagueID, season, err)
	}
	result.Fetched = len(items)

	if err := s.leagueRepo.Upsert(ctx, league.League{
		LeagueID: comp.LeagueID,
		Name:     comp.Name,
		Country:  leagueCountry(comp.LeagueID),
		Season:   season,
	}); err != nil {
		return result, fmt.Errorf("upsert league league_id=%d: %w", comp.LeagueID, err)
	}

	for _, item := range items {
		if item.FixtureID <= 0 {
			result.Fetched--
			continue
		}
		if err := s.fixtureRepo.Upsert(ctx, mapExternalFixtureToDomain(item, comp, season)); err != nil {
			return result, fmt.Errorf("upsert fixture fixture_id=%d: %w", item.FixtureID, err)
		}
		result.Reconciled++
	}

	s.logger.InfoContext(ctx, "fixture sync completed",
		"competition", comp.Key,
		"team_id", req.TeamID,
		"season", season,
		"fetched", result.Fetched,
		"reconciled", result.Reconciled,
	)

	return result, nil
}

func mapExternalFixtureToDomain(item ExternalFixture, comp competition.Competition, season int) fixture.Fixture {
	leagueID := item.LeagueID
	if leagueID <= 0 {
		leagueID = comp.LeagueID
	}
	leagueName := strings.TrimSpace(item.LeagueName)
	if leagueName == "" {
		leagueName = comp.Name
	}
	if item.Season > 0 {
		season = item.Season
	}

	return fixture.Fixture{
		FixtureID:    item.FixtureID,
		Date:         item.KickoffAt.UTC(),
		Timestamp:    item.Timestamp,
		Venue:        orPlaceholder(item.Venue),
		VenueCity:    orPlaceholder(item.VenueCity),
		Status:       fixture.StatusFromShort(item.StatusShort),
		StatusLong:   strings.TrimSpace(item.StatusLong),
		LeagueID:     leagueID,
		LeagueName:   leagueName,
		Season:       season,
		Round:        strings.TrimSpace(item.Round),
		HomeTeamID:   item.HomeTeamID,
		HomeTeamName: strings.TrimSpace(item.HomeTeamName),
		AwayTeamID:   item.AwayTeamID,
		AwayTeamName: strings.TrimSpace(item.AwayTeamName),
		HomeGoals:    cloneIntPtr(item.HomeGoals),
		AwayGoals:    cloneIntPtr(item.AwayGoals),
		HalftimeHome: cloneIntPtr(item.HalftimeHome),
		HalftimeAway: cloneIntPtr(item.HalftimeAway),
		FulltimeHome: cloneIntPtr(item.FulltimeHome),
		FulltimeAway: cloneIntPtr(item.FulltimeAway),
	}
}

func leagueCountry(leagueID int64) string {
	// Libertadores and Sul-Americana are continental cups.
	switch leagueID {
	case 13, 11:
		return "South America"
	default:
		return "Brazil"
	}
}

func orPlaceholder(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "N/A"
	}
	return value
}

func cloneIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
