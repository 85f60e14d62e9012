package resilient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	playermock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
)

func TestPlayerRepository_OpenBreakerReturnsUnavailable(t *testing.T) {
	storeErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	next := playermock.NewRepository(t)
	next.On("ListAll", mock.Anything).Return(nil, storeErr).Twice()

	repo := NewPlayerRepository(next, resilience.NewCircuitBreaker(2, time.Minute, 1))
	for n := 0; n < 2; n++ {
		if _, err := repo.ListAll(context.Background()); !errors.Is(err, storeErr) {
			t.Fatalf("attempt %d: expected store error, got %v", n, err)
		}
	}

	_, err := repo.ListAll(context.Background())
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestTeamRepository_PassesThroughOnSuccess(t *testing.T) {
	next := teammock.NewRepository(t)
	next.On("GetByKey", mock.Anything, "Arsenal").Return(fixtureTeam(), true, nil).Once()

	repo := NewTeamRepository(next, resilience.NewCircuitBreaker(1, time.Minute, 1))
	got, ok, err := repo.GetByKey(context.Background(), "Arsenal")
	if err != nil || !ok || got.Name != "Arsenal" {
		t.Fatalf("unexpected result: %+v ok=%v err=%v", got, ok, err)
	}
}

func fixtureTeam() team.Team {
	rank := 3
	return team.Team{Name: "Arsenal", Rank: &rank}
}
