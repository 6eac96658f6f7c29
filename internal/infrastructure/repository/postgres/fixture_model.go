package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	FixtureID    int64         `db:"fixture_id"`
	Date         time.Time     `db:"date"`
	Timestamp    int64         `db:"timestamp"`
	Venue        string        `db:"venue"`
	VenueCity    string        `db:"venue_city"`
	Status       string        `db:"status"`
	StatusLong   string        `db:"status_long"`
	LeagueID     int64         `db:"league_id"`
	LeagueName   string        `db:"league_name"`
	Season       int           `db:"season"`
	Round        string        `db:"round"`
	HomeTeamID   int64         `db:"home_team_id"`
	HomeTeamName string        `db:"home_team_name"`
	AwayTeamID   int64         `db:"away_team_id"`
	AwayTeamName string        `db:"away_team_name"`
	HomeGoals    sql.NullInt64 `db:"home_goals"`
	AwayGoals    sql.NullInt64 `db:"away_goals"`
	HalftimeHome sql.NullInt64 `db:"halftime_home"`
	HalftimeAway sql.NullInt64 `db:"halftime_away"`
	FulltimeHome sql.NullInt64 `db:"fulltime_home"`
	FulltimeAway sql.NullInt64 `db:"fulltime_away"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

// fixtureViewModel is one fixture row joined against its attendance mark.
type fixtureViewModel struct {
	fixtureTableModel
	AttendedAt    *time.Time     `db:"attended_at"`
	AttendedNotes sql.NullString `db:"attended_notes"`
}
