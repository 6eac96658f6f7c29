package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rbarros/matchday/internal/domain/team"
	qb "github.com/rbarros/matchday/internal/platform/querybuilder"
)

type teamTableModel struct {
	TeamID    int64     `db:"team_id"`
	Name      string    `db:"name"`
	Country   string    `db:"country"`
	Founded   int       `db:"founded"`
	LogoURL   string    `db:"logo_url"`
	CreatedAt time.Time `db:"created_at"`
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Upsert(ctx context.Context, t team.Team) error {
	model := teamTableModel{
		TeamID:    t.TeamID,
		Name:      t.Name,
		Country:   t.Country,
		Founded:   t.Founded,
		LogoURL:   t.LogoURL,
		CreatedAt: time.Now().UTC(),
	}

	suffix := `ON CONFLICT (team_id) DO UPDATE SET
	name = EXCLUDED.name,
	country = EXCLUDED.country,
	founded = EXCLUDED.founded,
	logo_url = EXCLUDED.logo_url`

	query, args, err := qb.InsertModel("teams", model, suffix)
	if err != nil {
		return fmt.Errorf("build upsert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}

	return team.Team{
		TeamID:    row.TeamID,
		Name:      row.Name,
		Country:   row.Country,
		Founded:   row.Founded,
		LogoURL:   row.LogoURL,
		CreatedAt: row.CreatedAt,
	}, true, nil
}
