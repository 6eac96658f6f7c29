package fixture

import "context"

// Filter narrows List results. Zero values mean "no restriction on that
// dimension"; filters compose conjunctively.
type Filter struct {
	TeamID       int64
	Status       string
	AttendedOnly bool
	Limit        int
}

// Repository owns durable fixture state.
type Repository interface {
	Upsert(ctx context.Context, f Fixture) error
	GetByID(ctx context.Context, fixtureID int64) (View, bool, error)
	List(ctx context.Context, filter Filter) ([]View, error)
}
