package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	ListAll(ctx context.Context) ([]Team, error)
	GetByKey(ctx context.Context, name string) (Team, bool, error)
}

// Writer is used by the standing importer.
type Writer interface {
	Upsert(ctx context.Context, items ...Team) error
}
