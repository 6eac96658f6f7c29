package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rbarros/matchday/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues map[int64]league.League
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{leagues: make(map[int64]league.League)}
}

func (r *LeagueRepository) Upsert(_ context.Context, l league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.leagues[l.LeagueID]; ok {
		l.CreatedAt = existing.CreatedAt
	} else {
		l.CreatedAt = time.Now().UTC()
	}
	r.leagues[l.LeagueID] = l
	return nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leagues[leagueID]
	return l, ok, nil
}
