package usecase

import (
	"context"
	"time"
)

// SportDataProvider is the outbound port to the remote football data API.
type SportDataProvider interface {
	FetchTeamFixtures(ctx context.Context, teamID, leagueID int64, season int) ([]ExternalFixture, error)
	FetchFixtureByID(ctx context.Context, fixtureID int64) (ExternalFixture, bool, error)
	SearchTeams(ctx context.Context, name, country string) ([]ExternalTeam, error)
}

// ExternalFixture is a provider fixture before reconciliation. StatusShort
// carries the provider status code; the canonical status is derived during
// mapping.
type ExternalFixture struct {
	FixtureID    int64
	KickoffAt    time.Time
	Timestamp    int64
	Venue        string
	VenueCity    string
	StatusShort  string
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
}

type ExternalTeam struct {
	TeamID  int64
	Name    string
	Country string
	Founded int
	LogoURL string
}
