package attendance

import "time"

// MarkOutcome is the tagged result of a mark attempt. The duplicate case is a
// normal outcome, not an error.
type MarkOutcome int

const (
	MarkCreated MarkOutcome = iota
	MarkAlreadyExists
)

// Mark asserts that the user attended a fixture. At most one mark exists per
// fixture id.
type Mark struct {
	FixtureID  int64
	AttendedAt time.Time
	Notes      string
}

// StadiumVisits counts attended matches at one (venue, city) pair.
type StadiumVisits struct {
	Venue  string
	City   string
	Visits int
}

// Record is the win/draw/loss breakdown for a team over its attended finished
// fixtures. It is only present when statistics were scoped to a team.
type Record struct {
	Wins   int
	Draws  int
	Losses int
}

// Stats aggregates attendance marks. Record is nil when no team scope was
// given.
type Stats struct {
	TotalAttended int
	Record        *Record
	Stadiums      []StadiumVisits
}
