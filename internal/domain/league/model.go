package league

import "time"

// League is a competition/season pair as stored alongside synced fixtures.
type League struct {
	LeagueID  int64
	Name      string
	Country   string
	Season    int
	CreatedAt time.Time
}
