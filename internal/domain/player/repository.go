package player

import (
	"context"
	"errors"
)

// ErrDuplicateIndex is returned by writers when the primary key is taken.
var ErrDuplicateIndex = errors.New("player index already exists")

// Repository describes the read access the filter engine needs.
type Repository interface {
	ListAll(ctx context.Context) ([]Player, error)
	GetByKey(ctx context.Context, index int) (Player, bool, error)
}

// Writer describes player mutations. Names are matched exactly.
type Writer interface {
	Insert(ctx context.Context, items ...Player) error
	FindByName(ctx context.Context, name string) (Player, bool, error)
	// ReplaceByName deletes the row named like item and inserts item in one unit of work.
	// It reports false when no row carries that name.
	ReplaceByName(ctx context.Context, item Player) (bool, error)
	DeleteByName(ctx context.Context, name string) (Player, bool, error)
}

// Store is a repository that also accepts writes.
type Store interface {
	Repository
	Writer
}
