package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rbarros/matchday/internal/domain/attendance"
	"github.com/rbarros/matchday/internal/domain/fixture"
)

// AttendanceRepository shares state with a FixtureRepository so marks join
// against fixtures the way the SQL implementation does.
type AttendanceRepository struct {
	store *FixtureRepository
}

func NewAttendanceRepository(store *FixtureRepository) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

func (r *AttendanceRepository) Mark(_ context.Context, fixtureID int64, notes string) (attendance.MarkOutcome, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.fixtures[fixtureID]; !ok {
		return 0, fmt.Errorf("insert attendance: %w", attendance.ErrFixtureMissing)
	}
	if _, ok := r.store.marks[fixtureID]; ok {
		return attendance.MarkAlreadyExists, nil
	}

	r.store.marks[fixtureID] = markEntry{attendedAt: time.Now().UTC(), notes: notes}
	return attendance.MarkCreated, nil
}

func (r *AttendanceRepository) Unmark(_ context.Context, fixtureID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.marks[fixtureID]; !ok {
		return false, nil
	}
	delete(r.store.marks, fixtureID)
	return true, nil
}

func (r *AttendanceRepository) Statistics(_ context.Context, teamID int64) (attendance.Stats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stats := attendance.Stats{}
	visits := make(map[[2]string]int)

	var record *attendance.Record
	if teamID > 0 {
		record = &attendance.Record{}
	}

	for fixtureID := range r.store.marks {
		f, ok := r.store.fixtures[fixtureID]
		if !ok {
			continue
		}
		if teamID > 0 && f.HomeTeamID != teamID && f.AwayTeamID != teamID {
			continue
		}

		stats.TotalAttended++
		visits[[2]string{f.Venue, f.VenueCity}]++

		if record != nil && f.Status == fixture.StatusFinished && f.HomeGoals != nil && f.AwayGoals != nil {
			teamGoals, rivalGoals := *f.HomeGoals, *f.AwayGoals
			if f.HomeTeamID != teamID {
				teamGoals, rivalGoals = rivalGoals, teamGoals
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
	}

	stats.Record = record
	stats.Stadiums = make([]attendance.StadiumVisits, 0, len(visits))
	for key, count := range visits {
		stats.Stadiums = append(stats.Stadiums, attendance.StadiumVisits{
			Venue:  key[0],
			City:   key[1],
			Visits: count,
		})
	}
	sort.SliceStable(stats.Stadiums, func(i, j int) bool {
		if stats.Stadiums[i].Visits != stats.Stadiums[j].Visits {
			return stats.Stadiums[i].Visits > stats.Stadiums[j].Visits
		}
		return stats.Stadiums[i].Venue < stats.Stadiums[j].Venue
	})

	return stats, nil
}
