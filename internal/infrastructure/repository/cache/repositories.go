package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	basecache "github.com/riskibarqy/fantasy-football/internal/platform/cache"
	"github.com/valyala/bytebufferpool"
)

const (
	playerKeyPrefix = "player:"
	teamKeyPrefix   = "team:"
)

// PlayerRepository is a read-through cache over a player store. Writes pass through and drop every player key.
type PlayerRepository struct {
	next   player.Repository
	writer player.Writer
	cache  *basecache.Store
}

// NewPlayerRepository wraps next; writer may be nil when writes are not wired.
func NewPlayerRepository(next player.Repository, writer player.Writer, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, writer: writer, cache: cache}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerKeyPrefix+"all", func(ctx context.Context) (any, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByKey(ctx context.Context, index int) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, cacheKey(playerKeyPrefix, "key:", strconv.Itoa(index)), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByKey(ctx, index)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByKey{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByKey)
	return cached.value, cached.exists, nil
}

type cachedPlayerByKey struct {
	value  player.Player
	exists bool
}

func (r *PlayerRepository) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.writer.FindByName(ctx, name)
}

func (r *PlayerRepository) Insert(ctx context.Context, items ...player.Player) error {
	defer r.invalidate(ctx)
	return r.writer.Insert(ctx, items...)
}

func (r *PlayerRepository) ReplaceByName(ctx context.Context, item player.Player) (bool, error) {
	defer r.invalidate(ctx)
	return r.writer.ReplaceByName(ctx, item)
}

func (r *PlayerRepository) DeleteByName(ctx context.Context, name string) (player.Player, bool, error) {
	defer r.invalidate(ctx)
	return r.writer.DeleteByName(ctx, name)
}

func (r *PlayerRepository) invalidate(ctx context.Context) {
	r.cache.DeletePrefix(ctx, playerKeyPrefix)
}

type TeamRepository struct {
	next   team.Repository
	writer team.Writer
	cache  *basecache.Store
}

func NewTeamRepository(next team.Repository, writer team.Writer, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, writer: writer, cache: cache}
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamKeyPrefix+"all", func(ctx context.Context) (any, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByKey(ctx context.Context, name string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, cacheKey(teamKeyPrefix, "key:", name), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByKey(ctx, name)
		if err != nil {
			return nil, err
		}
		return cachedTeamByKey{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByKey)
	return cached.value, cached.exists, nil
}

type cachedTeamByKey struct {
	value  team.Team
	exists bool
}

func (r *TeamRepository) Upsert(ctx context.Context, items ...team.Team) error {
	defer r.cache.DeletePrefix(ctx, teamKeyPrefix)
	return r.writer.Upsert(ctx, items...)
}

func cacheKey(parts ...string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, part := range parts {
		_, _ = buf.WriteString(part)
	}
	return buf.String()
}
