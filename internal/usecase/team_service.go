package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rbarros/matchday/internal/domain/team"
	"github.com/rbarros/matchday/internal/platform/logging"
)

type TeamSearchConfig struct {
	Enabled        bool
	DefaultCountry string
}

type TeamService struct {
	provider SportDataProvider
	teamRepo team.Repository
	cfg      TeamSearchConfig
	logger   *logging.Logger
}

func NewTeamService(provider SportDataProvider, teamRepo team.Repository, cfg TeamSearchConfig, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		provider: provider,
		teamRepo: teamRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// Search queries the provider for teams by name and persists the matches so
// later statistics lookups can resolve team names locally.
func (s *TeamService) Search(ctx context.Context, name, country string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Search")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	country = strings.TrimSpace(country)
	if country == "" {
		country = s.cfg.DefaultCountry
	}

	if !s.cfg.Enabled {
		return nil, fmt.Errorf("%w: sport data sync is disabled (API_FOOTBALL_ENABLED=false)", ErrDependencyUnavailable)
	}
	if s.provider == nil {
		return nil, fmt.Errorf("%w: sport data provider is not configured", ErrDependencyUnavailable)
	}

	items, err := s.provider.SearchTeams(ctx, name, country)
	if err != nil {
		return nil, fmt.Errorf("search teams from sport data provider name=%q: %w", name, err)
	}

	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if item.TeamID <= 0 || strings.TrimSpace(item.Name) == "" {
			continue
		}
		t := team.Team{
			TeamID:  item.TeamID,
			Name:    strings.TrimSpace(item.Name),
			Country: strings.TrimSpace(item.Country),
			Founded: item.Founded,
			LogoURL: strings.TrimSpace(item.LogoURL),
		}
		if err := s.teamRepo.Upsert(ctx, t); err != nil {
			return nil, fmt.Errorf("upsert team team_id=%d: %w", t.TeamID, err)
		}
		out = append(out, t)
	}

	s.logger.DebugContext(ctx, "team search completed", "name", name, "country", country, "matches", len(out))

	return out, nil
}

// Lookup reads a previously persisted team.
func (s *TeamService) Lookup(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Lookup")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return t, nil
}
