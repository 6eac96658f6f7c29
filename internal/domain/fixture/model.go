package fixture

import (
	"strings"
	"time"
)

// Canonical match statuses. Every provider status code collapses into one of
// these four values before a fixture is persisted.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusPostponed  = "postponed"
)

// Fixture is one scheduled or played match, identified by the provider-assigned
// fixture id. Score fields stay nil until the match has been played.
type Fixture struct {
	FixtureID    int64
	Date         time.Time
	Timestamp    int64
	Venue        string
	VenueCity    string
	Status       string
	StatusLong   string
	LeagueID     int64
	LeagueName   string
	Season       int
	Round        string
	HomeTeamID   int64
	HomeTeamName string
	AwayTeamID   int64
	AwayTeamName string
	HomeGoals    *int
	AwayGoals    *int
	HalftimeHome *int
	HalftimeAway *int
	FulltimeHome *int
	FulltimeAway *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// View is a fixture row joined with its attendance mark, if any.
type View struct {
	Fixture
	Attended     bool
	AttendedAt   *time.Time
	AttendedNote string
}

// StatusFromShort maps an API-Football short status code to the canonical
// status. Unknown codes fall through to postponed.
func StatusFromShort(short string) string {
	switch strings.ToUpper(strings.TrimSpace(short)) {
	case "FT", "AET", "PEN":
		return StatusFinished
	case "1H", "2H", "HT", "ET", "P", "LIVE":
		return StatusInProgress
	case "TBD", "NS":
		return StatusScheduled
	default:
		return StatusPostponed
	}
}

// IsValidStatus reports whether value is one of the four canonical statuses.
func IsValidStatus(value string) bool {
	switch value {
	case StatusScheduled, StatusInProgress, StatusFinished, StatusPostponed:
		return true
	default:
		return false
	}
}

// DisplayDate renders the kickoff instant the way the listing surfaces show it.
func DisplayDate(at time.Time) string {
	if at.IsZero() {
		return "N/A"
	}
	return at.Format("02/01/2006 15:04")
}
