package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rbarros/matchday/internal/domain/attendance"
	"github.com/rbarros/matchday/internal/domain/fixture"
	qb "github.com/rbarros/matchday/internal/platform/querybuilder"
)

type attendanceTableModel struct {
	FixtureID  int64     `db:"fixture_id"`
	AttendedAt time.Time `db:"attended_at"`
	Notes      string    `db:"notes"`
}

type stadiumRow struct {
	Venue  string `db:"venue"`
	City   string `db:"venue_city"`
	Visits int    `db:"visits"`
}

type attendedResultRow struct {
	HomeTeamID int64 `db:"home_team_id"`
	HomeGoals  int   `db:"home_goals"`
	AwayGoals  int   `db:"away_goals"`
}

type AttendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Mark records attendance for a fixture. A duplicate mark is reported through
// the outcome; a mark against an unknown fixture maps the foreign key
// violation to attendance.ErrFixtureMissing.
func (r *AttendanceRepository) Mark(ctx context.Context, fixtureID int64, notes string) (attendance.MarkOutcome, error) {
	model := attendanceTableModel{
		FixtureID:  fixtureID,
		AttendedAt: time.Now().UTC(),
		Notes:      notes,
	}

	query, args, err := qb.InsertModel("attended_matches", model, "")
	if err != nil {
		return 0, fmt.Errorf("build insert attendance query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return attendance.MarkAlreadyExists, nil
		}
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("insert attendance: %w", attendance.ErrFixtureMissing)
		}
		return 0, fmt.Errorf("insert attendance: %w", err)
	}

	return attendance.MarkCreated, nil
}

func (r *AttendanceRepository) Unmark(ctx context.Context, fixtureID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("attended_matches").
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete attendance query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete attendance: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read delete attendance result: %w", err)
	}

	return affected > 0, nil
}

// Statistics aggregates the attendance history. With a team scope the
// win/draw/loss record covers attended finished fixtures only; draws count
// matches with equal goals regardless of side.
func (r *AttendanceRepository) Statistics(ctx context.Context, teamID int64) (attendance.Stats, error) {
	stats := attendance.Stats{}

	total, err := r.countAttended(ctx, teamID)
	if err != nil {
		return attendance.Stats{}, err
	}
	stats.TotalAttended = total

	if teamID > 0 {
		record, err := r.teamRecord(ctx, teamID)
		if err != nil {
			return attendance.Stats{}, err
		}
		stats.Record = record
	}

	stadiums, err := r.stadiumVisits(ctx, teamID)
	if err != nil {
		return attendance.Stats{}, err
	}
	stats.Stadiums = stadiums

	return stats, nil
}

func (r *AttendanceRepository) countAttended(ctx context.Context, teamID int64) (int, error) {
	builder := qb.Select("COUNT(*) AS total").
		From("attended_matches am").
		InnerJoin("fixtures f", "f.fixture_id = am.fixture_id")
	if teamID > 0 {
		builder = builder.Where(teamScope(teamID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count attended query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count attended matches: %w", err)
	}

	return total, nil
}

func (r *AttendanceRepository) teamRecord(ctx context.Context, teamID int64) (*attendance.Record, error) {
	query, args, err := qb.Select("f.home_team_id", "f.home_goals", "f.away_goals").
		From("attended_matches am").
		InnerJoin("fixtures f", "f.fixture_id = am.fixture_id").
		Where(
			teamScope(teamID),
			qb.Eq("f.status", fixture.StatusFinished),
			qb.IsNotNull("f.home_goals"),
			qb.IsNotNull("f.away_goals"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build team record query: %w", err)
	}

	var rows []attendedResultRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select attended results: %w", err)
	}

	record := &attendance.Record{}
	for _, row := range rows {
		teamGoals, rivalGoals := row.HomeGoals, row.AwayGoals
		if row.HomeTeamID != teamID {
			teamGoals, rivalGoals = row.AwayGoals, row.HomeGoals
		}
		switch {
		case teamGoals > rivalGoals:
			record.Wins++
		case teamGoals < rivalGoals:
			record.Losses++
		default:
			record.Draws++
		}
	}

	return record, nil
}

func (r *AttendanceRepository) stadiumVisits(ctx context.Context, teamID int64) ([]attendance.StadiumVisits, error) {
	builder := qb.Select("f.venue", "f.venue_city", "COUNT(*) AS visits").
		From("attended_matches am").
		InnerJoin("fixtures f", "f.fixture_id = am.fixture_id")
	if teamID > 0 {
		builder = builder.Where(teamScope(teamID))
	}

	query, args, err := builder.
		GroupBy("f.venue", "f.venue_city").
		OrderBy("visits DESC", "f.venue").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build stadium visits query: %w", err)
	}

	var rows []stadiumRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stadium visits: %w", err)
	}

	out := make([]attendance.StadiumVisits, 0, len(rows))
	for _, row := range rows {
		out = append(out, attendance.StadiumVisits{
			Venue:  row.Venue,
			City:   row.City,
			Visits: row.Visits,
		})
	}

	return out, nil
}

func teamScope(teamID int64) qb.Condition {
	return qb.Or(
		qb.Eq("f.home_team_id", teamID),
		qb.Eq("f.away_team_id", teamID),
	)
}
