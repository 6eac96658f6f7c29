package attendance

import (
	"context"
	"errors"
)

// ErrFixtureMissing is returned by Mark when the referenced fixture has never
// been synced.
var ErrFixtureMissing = errors.New("fixture does not exist")

// Repository owns attendance marks and their aggregations. A teamID of zero
// means "all teams".
type Repository interface {
	Mark(ctx context.Context, fixtureID int64, notes string) (MarkOutcome, error)
	Unmark(ctx context.Context, fixtureID int64) (bool, error)
	Statistics(ctx context.Context, teamID int64) (Stats, error)
}
