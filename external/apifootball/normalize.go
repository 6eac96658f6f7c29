package apifootball

import (
	"strings"
	"time"

	"github.com/rbarros/matchday/internal/usecase"
)

// normalizeFixture flattens one provider fixture item into the neutral shape
// the sync service consumes. Kickoff dates arrive as RFC 3339 with offsets and
// are normalized to UTC.
func normalizeFixture(item fixtureItem) usecase.ExternalFixture {
	out := usecase.ExternalFixture{
		FixtureID:    item.Fixture.ID,
		KickoffAt:    parseProviderDate(item.Fixture.Date),
		Timestamp:    item.Fixture.Timestamp,
		Venue:        strings.TrimSpace(item.Fixture.Venue.Name),
		VenueCity:    strings.TrimSpace(item.Fixture.Venue.City),
		StatusShort:  strings.TrimSpace(item.Fixture.Status.Short),
		StatusLong:   strings.TrimSpace(item.Fixture.Status.Long),
		LeagueID:     item.League.ID,
		LeagueName:   strings.TrimSpace(item.League.Name),
		Season:       item.League.Season,
		Round:        strings.TrimSpace(item.League.Round),
		HomeTeamID:   item.Teams.Home.ID,
		HomeTeamName: strings.TrimSpace(item.Teams.Home.Name),
		AwayTeamID:   item.Teams.Away.ID,
		AwayTeamName: strings.TrimSpace(item.Teams.Away.Name),
		HomeGoals:    cloneIntPtr(item.Goals.Home),
		AwayGoals:    cloneIntPtr(item.Goals.Away),
		HalftimeHome: cloneIntPtr(item.Score.Halftime.Home),
		HalftimeAway: cloneIntPtr(item.Score.Halftime.Away),
		FulltimeHome: cloneIntPtr(item.Score.Fulltime.Home),
		FulltimeAway: cloneIntPtr(item.Score.Fulltime.Away),
	}

	if out.Timestamp == 0 && !out.KickoffAt.IsZero() {
		out.Timestamp = out.KickoffAt.Unix()
	}

	return out
}

func normalizeTeam(item teamItem) usecase.ExternalTeam {
	return usecase.ExternalTeam{
		TeamID:  item.Team.ID,
		Name:    strings.TrimSpace(item.Team.Name),
		Country: strings.TrimSpace(item.Team.Country),
		Founded: item.Team.Founded,
		LogoURL: strings.TrimSpace(item.Team.Logo),
	}
}

func parseProviderDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-07:00", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}

	return time.Time{}
}

func cloneIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
