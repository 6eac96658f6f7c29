package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rbarros/matchday/internal/domain/league"
	qb "github.com/rbarros/matchday/internal/platform/querybuilder"
)

type leagueTableModel struct {
	LeagueID  int64     `db:"league_id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	Season    int       `db:"season"`
	CreatedAt time.Time `db:"created_at"`
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Upsert(ctx context.Context, l league.League) error {
	model := leagueTableModel{
		LeagueID:  l.LeagueID,
		Name:      l.Name,
		Country:   l.Country,
		Season:    l.Season,
		CreatedAt: time.Now().UTC(),
	}

	suffix := `ON CONFLICT (league_id) DO UPDATE SET
	name = EXCLUDED.name,
	country = EXCLUDED.country,
	season = EXCLUDED.season`

	query, args, err := qb.InsertModel("leagues", model, suffix)
	if err != nil {
		return fmt.Errorf("build upsert league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build select league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league: %w", err)
	}

	return league.League{
		LeagueID:  row.LeagueID,
		Name:      row.Name,
		Country:   row.Country,
		Season:    row.Season,
		CreatedAt: row.CreatedAt,
	}, true, nil
}
