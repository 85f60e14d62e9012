package resilient

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/platform/resilience"
)

// ErrStoreUnavailable marks reads rejected by an open breaker.
var ErrStoreUnavailable = errors.New("store unavailable")

func guard(ctx context.Context, breaker *resilience.CircuitBreaker, fn func(context.Context) error) error {
	err := breaker.Execute(ctx, fn)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}

// PlayerRepository guards player reads with a circuit breaker.
type PlayerRepository struct {
	next    player.Repository
	breaker *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, breaker *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, breaker: breaker}
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	var items []player.Player
	err := guard(ctx, r.breaker, func(ctx context.Context) error {
		var err error
		items, err = r.next.ListAll(ctx)
		return err
	})
	return items, err
}

func (r *PlayerRepository) GetByKey(ctx context.Context, index int) (player.Player, bool, error) {
	var (
		item   player.Player
		exists bool
	)
	err := guard(ctx, r.breaker, func(ctx context.Context) error {
		var err error
		item, exists, err = r.next.GetByKey(ctx, index)
		return err
	})
	return item, exists, err
}

type TeamRepository struct {
	next    team.Repository
	breaker *resilience.CircuitBreaker
}

func NewTeamRepository(next team.Repository, breaker *resilience.CircuitBreaker) *TeamRepository {
	return &TeamRepository{next: next, breaker: breaker}
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	var items []team.Team
	err := guard(ctx, r.breaker, func(ctx context.Context) error {
		var err error
		items, err = r.next.ListAll(ctx)
		return err
	})
	return items, err
}

func (r *TeamRepository) GetByKey(ctx context.Context, name string) (team.Team, bool, error) {
	var (
		item   team.Team
		exists bool
	)
	err := guard(ctx, r.breaker, func(ctx context.Context) error {
		var err error
		item, exists, err = r.next.GetByKey(ctx, name)
		return err
	})
	return item, exists, err
}
