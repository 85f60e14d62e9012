package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	teammock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func fixtureTeams() []team.Team {
	return []team.Team{
		{Rank: intPtr(3), Name: "Arsenal", Points: intPtr(13)},
		{Rank: intPtr(13), Name: "Paris Saint-Germain", Points: intPtr(3)},
		{Rank: intPtr(30), Name: "Celtic", Points: intPtr(30)},
	}
}

func TestTeamService_ListTeamsByRankIsExactUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := teammock.NewRepository(t)
	repo.
		On("ListAll", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(fixtureTeams(), nil).
		Once()

	service := NewTeamService(repo)
	got, err := service.ListTeamsByRank(ctx, 3)
	if err != nil {
		t.Fatalf("list teams by rank: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Arsenal" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestTeamService_ListTeamsByPoints(t *testing.T) {
	t.Parallel()

	repo := teammock.NewRepository(t)
	repo.On("ListAll", mock.Anything).Return(fixtureTeams(), nil).Once()

	service := NewTeamService(repo)
	got, err := service.ListTeamsByPoints(context.Background(), 3)
	if err != nil {
		t.Fatalf("list teams by points: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Paris Saint-Germain" {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestTeamService_ListTeamsByName(t *testing.T) {
	t.Parallel()

	repo := teammock.NewRepository(t)
	repo.On("ListAll", mock.Anything).Return(fixtureTeams(), nil).Twice()

	service := NewTeamService(repo)
	got, err := service.ListTeamsByName(context.Background(), "CEL")
	if err != nil {
		t.Fatalf("list teams by name: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Celtic" {
		t.Fatalf("unexpected teams: %+v", got)
	}

	got, err = service.ListTeamsByName(context.Background(), "madrid")
	if err != nil {
		t.Fatalf("list teams by name: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestTeamService_ListTeams_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("relation \"standing\" does not exist")
	repo := teammock.NewRepository(t)
	repo.On("ListAll", mock.Anything).Return(nil, storeErr).Once()

	service := NewTeamService(repo)
	if _, err := service.ListTeams(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}
