package team

import "context"

// Repository persists teams discovered through provider searches.
type Repository interface {
	Upsert(ctx context.Context, t Team) error
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
