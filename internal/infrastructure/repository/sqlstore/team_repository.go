package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	qb "github.com/riskibarqy/fantasy-football/internal/platform/querybuilder"
)

// TeamRepository reads and upserts the standing table.
type TeamRepository struct {
	db      *sqlx.DB
	dialect Dialect
}

func NewTeamRepository(db *sqlx.DB, dialect Dialect) *TeamRepository {
	return &TeamRepository{db: db, dialect: dialect}
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(qb.Idents(teamColumns...)...).
		From(teamTable).
		OrderBy(qb.Ident("Squad")).
		PlaceholderFormat(r.dialect.Placeholder).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetByKey(ctx context.Context, name string) (team.Team, bool, error) {
	query, args, err := qb.Select(qb.Idents(teamColumns...)...).
		From(teamTable).
		Where(qb.Eq(qb.Ident("Squad"), name)).
		Limit(1).
		PlaceholderFormat(r.dialect.Placeholder).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by name query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by name: %w", err)
	}

	return row.toDomain(), true, nil
}

// Upsert inserts or overwrites rows keyed by squad name.
func (r *TeamRepository) Upsert(ctx context.Context, items ...team.Team) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]teamTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, teamModelFromDomain(item))
	}

	query, args, err := qb.InsertModels(teamTable, models, teamUpsertSuffix(), r.dialect.Placeholder)
	if err != nil {
		return fmt.Errorf("build upsert teams query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	return nil
}

func teamUpsertSuffix() string {
	sets := make([]string, 0, len(teamColumns)-1)
	for _, col := range teamColumns[1:] {
		sets = append(sets, qb.Ident(col)+" = excluded."+qb.Ident(col))
	}
	return "ON CONFLICT (" + qb.Ident("Squad") + ") DO UPDATE SET " + strings.Join(sets, ", ")
}
