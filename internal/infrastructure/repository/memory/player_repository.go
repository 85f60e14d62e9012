package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
)

// PlayerRepository keeps players sorted by index, mirroring primary key order of the SQL store.
type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := append([]player.Player(nil), players...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Index < items[j].Index })

	return &PlayerRepository{players: items}
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)
	return out, nil
}

func (r *PlayerRepository) GetByKey(_ context.Context, index int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.positionOf(index)
	if !ok {
		return player.Player{}, false, nil
	}
	return r.players[pos], true, nil
}

func (r *PlayerRepository) FindByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Name == name {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) Insert(_ context.Context, items ...player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := r.positionOf(item.Index); ok {
			return fmt.Errorf("insert player index=%d: %w", item.Index, player.ErrDuplicateIndex)
		}
		if _, ok := seen[item.Index]; ok {
			return fmt.Errorf("insert player index=%d: %w", item.Index, player.ErrDuplicateIndex)
		}
		seen[item.Index] = struct{}{}
	}

	for _, item := range items {
		r.insertSorted(item)
	}
	return nil
}

func (r *PlayerRepository) ReplaceByName(_ context.Context, item player.Player) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.players {
		if p.Name != item.Name {
			continue
		}
		if other, ok := r.positionOf(item.Index); ok && other != i {
			return false, fmt.Errorf("replace player index=%d: %w", item.Index, player.ErrDuplicateIndex)
		}
		r.players = append(r.players[:i], r.players[i+1:]...)
		r.insertSorted(item)
		return true, nil
	}
	return false, nil
}

func (r *PlayerRepository) DeleteByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		first player.Player
		found bool
	)
	kept := r.players[:0]
	for _, p := range r.players {
		if p.Name == name {
			if !found {
				first, found = p, true
			}
			continue
		}
		kept = append(kept, p)
	}
	r.players = kept

	return first, found, nil
}

func (r *PlayerRepository) positionOf(index int) (int, bool) {
	pos := sort.Search(len(r.players), func(i int) bool { return r.players[i].Index >= index })
	if pos < len(r.players) && r.players[pos].Index == index {
		return pos, true
	}
	return pos, false
}

func (r *PlayerRepository) insertSorted(item player.Player) {
	pos, _ := r.positionOf(item.Index)
	r.players = append(r.players, player.Player{})
	copy(r.players[pos+1:], r.players[pos:])
	r.players[pos] = item
}
