package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rbarros/matchday/internal/domain/fixture"
)

// FixtureRepository is an in-memory fixture store used by tests and local
// runs without a database.
type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures map[int64]fixture.Fixture
	marks    map[int64]markEntry
}

type markEntry struct {
	attendedAt time.Time
	notes      string
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{
		fixtures: make(map[int64]fixture.Fixture),
		marks:    make(map[int64]markEntry),
	}
}

func (r *FixtureRepository) Upsert(_ context.Context, f fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := r.fixtures[f.FixtureID]; ok {
		f.CreatedAt = existing.CreatedAt
	} else {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
	r.fixtures[f.FixtureID] = f

	return nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID int64) (fixture.View, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fixtures[fixtureID]
	if !ok {
		return fixture.View{}, false, nil
	}

	return r.buildView(f), true, nil
}

func (r *FixtureRepository) List(_ context.Context, filter fixture.Filter) ([]fixture.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.View, 0, len(r.fixtures))
	for _, f := range r.fixtures {
		if filter.TeamID > 0 && f.HomeTeamID != filter.TeamID && f.AwayTeamID != filter.TeamID {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		view := r.buildView(f)
		if filter.AttendedOnly && !view.Attended {
			continue
		}
		out = append(out, view)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].FixtureID < out[j].FixtureID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *FixtureRepository) buildView(f fixture.Fixture) fixture.View {
	view := fixture.View{Fixture: f}
	if mark, ok := r.marks[f.FixtureID]; ok {
		at := mark.attendedAt
		view.Attended = true
		view.AttendedAt = &at
		view.AttendedNote = mark.notes
	}
	return view
}
