package league

import "context"

// Repository persists the league rows recorded during fixture sync.
type Repository interface {
	Upsert(ctx context.Context, l League) error
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
}
