package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rbarros/matchday/internal/domain/fixture"
	qb "github.com/rbarros/matchday/internal/platform/querybuilder"
)

const fixtureUpsertSuffix = `ON CONFLICT (fixture_id) DO UPDATE SET
	date = EXCLUDED.date,
	timestamp = EXCLUDED.timestamp,
	venue = EXCLUDED.venue,
	venue_city = EXCLUDED.venue_city,
	status = EXCLUDED.status,
	status_long = EXCLUDED.status_long,
	league_id = EXCLUDED.league_id,
	league_name = EXCLUDED.league_name,
	season = EXCLUDED.season,
	round = EXCLUDED.round,
	home_team_id = EXCLUDED.home_team_id,
	home_team_name = EXCLUDED.home_team_name,
	away_team_id = EXCLUDED.away_team_id,
	away_team_name = EXCLUDED.away_team_name,
	home_goals = EXCLUDED.home_goals,
	away_goals = EXCLUDED.away_goals,
	halftime_home = EXCLUDED.halftime_home,
	halftime_away = EXCLUDED.halftime_away,
	fulltime_home = EXCLUDED.fulltime_home,
	fulltime_away = EXCLUDED.fulltime_away,
	updated_at = EXCLUDED.updated_at`

var fixtureViewColumns = []string{
	"f.*",
	"am.attended_at AS attended_at",
	"am.notes AS attended_notes",
}

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// Upsert inserts or refreshes a fixture keyed on fixture_id. The original
// created_at survives re-syncs.
func (r *FixtureRepository) Upsert(ctx context.Context, f fixture.Fixture) error {
	now := time.Now().UTC()
	model := fixtureTableModel{
		FixtureID:    f.FixtureID,
		Date:         f.Date.UTC(),
		Timestamp:    f.Timestamp,
		Venue:        f.Venue,
		VenueCity:    f.VenueCity,
		Status:       f.Status,
		StatusLong:   f.StatusLong,
		LeagueID:     f.LeagueID,
		LeagueName:   f.LeagueName,
		Season:       f.Season,
		Round:        f.Round,
		HomeTeamID:   f.HomeTeamID,
		HomeTeamName: f.HomeTeamName,
		AwayTeamID:   f.AwayTeamID,
		AwayTeamName: f.AwayTeamName,
		HomeGoals:    intPtrToNullInt64(f.HomeGoals),
		AwayGoals:    intPtrToNullInt64(f.AwayGoals),
		HalftimeHome: intPtrToNullInt64(f.HalftimeHome),
		HalftimeAway: intPtrToNullInt64(f.HalftimeAway),
		FulltimeHome: intPtrToNullInt64(f.FulltimeHome),
		FulltimeAway: intPtrToNullInt64(f.FulltimeAway),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query, args, err := qb.InsertModel("fixtures", model, fixtureUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert fixture query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert fixture: %w", err)
	}

	return nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID int64) (fixture.View, bool, error) {
	query, args, err := qb.Select(fixtureViewColumns...).
		From("fixtures f").
		LeftJoin("attended_matches am", "am.fixture_id = f.fixture_id").
		Where(qb.Eq("f.fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return fixture.View{}, false, fmt.Errorf("build select fixture query: %w", err)
	}

	var row fixtureViewModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.View{}, false, nil
		}
		return fixture.View{}, false, fmt.Errorf("select fixture: %w", err)
	}

	return mapFixtureViewModel(row), true, nil
}

func (r *FixtureRepository) List(ctx context.Context, filter fixture.Filter) ([]fixture.View, error) {
	builder := qb.Select(fixtureViewColumns...).
		From("fixtures f").
		LeftJoin("attended_matches am", "am.fixture_id = f.fixture_id")

	if filter.TeamID > 0 {
		builder = builder.Where(qb.Or(
			qb.Eq("f.home_team_id", filter.TeamID),
			qb.Eq("f.away_team_id", filter.TeamID),
		))
	}
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("f.status", filter.Status))
	}
	if filter.AttendedOnly {
		builder = builder.Where(qb.IsNotNull("am.fixture_id"))
	}

	query, args, err := builder.
		OrderBy("f.date DESC").
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureViewModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.View, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapFixtureViewModel(row))
	}

	return out, nil
}

func mapFixtureViewModel(row fixtureViewModel) fixture.View {
	return fixture.View{
		Fixture: fixture.Fixture{
			FixtureID:    row.FixtureID,
			Date:         row.Date.UTC(),
			Timestamp:    row.Timestamp,
			Venue:        row.Venue,
			VenueCity:    row.VenueCity,
			Status:       row.Status,
			StatusLong:   row.StatusLong,
			LeagueID:     row.LeagueID,
			LeagueName:   row.LeagueName,
			Season:       row.Season,
			Round:        row.Round,
			HomeTeamID:   row.HomeTeamID,
			HomeTeamName: row.HomeTeamName,
			AwayTeamID:   row.AwayTeamID,
			AwayTeamName: row.AwayTeamName,
			HomeGoals:    nullInt64ToIntPtr(row.HomeGoals),
			AwayGoals:    nullInt64ToIntPtr(row.AwayGoals),
			HalftimeHome: nullInt64ToIntPtr(row.HalftimeHome),
			HalftimeAway: nullInt64ToIntPtr(row.HalftimeAway),
			FulltimeHome: nullInt64ToIntPtr(row.FulltimeHome),
			FulltimeAway: nullInt64ToIntPtr(row.FulltimeAway),
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
		Attended:     row.AttendedAt != nil,
		AttendedAt:   row.AttendedAt,
		AttendedNote: row.AttendedNotes.String,
	}
}
