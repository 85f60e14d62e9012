package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-football/internal/domain/team"
)

// TeamRepository keeps teams sorted by squad name, the primary key of the standing table.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{}
	_ = r.Upsert(context.Background(), teams...)
	return r
}

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)
	return out, nil
}

func (r *TeamRepository) GetByKey(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.positionOf(name)
	if !ok {
		return team.Team{}, false, nil
	}
	return r.teams[pos], true, nil
}

func (r *TeamRepository) Upsert(_ context.Context, items ...team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		pos, ok := r.positionOf(item.Name)
		if ok {
			r.teams[pos] = item
			continue
		}
		r.teams = append(r.teams, team.Team{})
		copy(r.teams[pos+1:], r.teams[pos:])
		r.teams[pos] = item
	}
	return nil
}

func (r *TeamRepository) positionOf(name string) (int, bool) {
	pos := sort.Search(len(r.teams), func(i int) bool { return r.teams[i].Name >= name })
	return pos, pos < len(r.teams) && r.teams[pos].Name == name
}
