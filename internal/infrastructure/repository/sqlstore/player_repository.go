package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-football/internal/platform/querybuilder"
)

// PlayerRepository reads and writes all_teams_ucl.
type PlayerRepository struct {
	db      *sqlx.DB
	dialect Dialect
}

func NewPlayerRepository(db *sqlx.DB, dialect Dialect) *PlayerRepository {
	return &PlayerRepository{db: db, dialect: dialect}
}

func (r *PlayerRepository) selectPlayers() *qb.SelectBuilder {
	return qb.Select(qb.Idents(playerColumns...)...).
		From(playerTable).
		PlaceholderFormat(r.dialect.Placeholder)
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	query, args, err := r.selectPlayers().OrderBy(qb.Ident("Index")).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByKey(ctx context.Context, index int) (player.Player, bool, error) {
	query, args, err := r.selectPlayers().Where(qb.Eq(qb.Ident("Index"), index)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by index query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by index: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.findByName(ctx, r.db, name)
}

// Insert writes all items in one statement; a taken index fails the whole batch.
func (r *PlayerRepository) Insert(ctx context.Context, items ...player.Player) error {
	if len(items) == 0 {
		return nil
	}

	return r.insert(ctx, r.db, items)
}

func (r *PlayerRepository) ReplaceByName(ctx context.Context, item player.Player) (bool, error) {
	replaced := false
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		existing, exists, err := r.findByName(ctx, tx, item.Name)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}

		if err := r.deleteWhere(ctx, tx, qb.Eq(qb.Ident("Index"), existing.Index)); err != nil {
			return err
		}
		if err := r.insert(ctx, tx, []player.Player{item}); err != nil {
			return err
		}
		replaced = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("replace player %q: %w", item.Name, err)
	}

	return replaced, nil
}

// DeleteByName removes every row carrying the exact name and returns the first of them.
func (r *PlayerRepository) DeleteByName(ctx context.Context, name string) (player.Player, bool, error) {
	var (
		deleted player.Player
		exists  bool
	)
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		deleted, exists, err = r.findByName(ctx, tx, name)
		if err != nil || !exists {
			return err
		}
		return r.deleteWhere(ctx, tx, qb.Eq(qb.Ident("Player"), name))
	})
	if err != nil {
		return player.Player{}, false, fmt.Errorf("delete player %q: %w", name, err)
	}

	return deleted, exists, nil
}

func (r *PlayerRepository) findByName(ctx context.Context, q sqlx.QueryerContext, name string) (player.Player, bool, error) {
	query, args, err := r.selectPlayers().
		Where(qb.Eq(qb.Ident("Player"), name)).
		OrderBy(qb.Ident("Index")).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by name query: %w", err)
	}

	var row playerTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) insert(ctx context.Context, exec sqlx.ExecerContext, items []player.Player) error {
	models := make([]playerTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, playerModelFromDomain(item))
	}

	query, args, err := qb.InsertModels(playerTable, models, "", r.dialect.Placeholder)
	if err != nil {
		return fmt.Errorf("build insert players query: %w", err)
	}

	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert players: %w", player.ErrDuplicateIndex)
		}
		return fmt.Errorf("insert players: %w", err)
	}
	return nil
}

func (r *PlayerRepository) deleteWhere(ctx context.Context, exec sqlx.ExecerContext, cond qb.Condition) error {
	query, args, err := qb.DeleteFrom(playerTable).
		Where(cond).
		PlaceholderFormat(r.dialect.Placeholder).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete players query: %w", err)
	}

	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}
	return nil
}
