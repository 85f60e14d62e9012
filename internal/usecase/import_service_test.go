package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/fantasy-football/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func staticPlayers(items []player.Player) PlayerLoader {
	return func(context.Context) ([]player.Player, error) { return items, nil }
}

func staticTeams(items []team.Team) TeamLoader {
	return func(context.Context) ([]team.Team, error) { return items, nil }
}

func TestImportService_ImportIntoMemory(t *testing.T) {
	ctx := context.Background()
	playerRepo := memory.NewPlayerRepository([]player.Player{{Index: 1, Name: "Already Stored", Team: "Celtic"}})
	teamRepo := memory.NewTeamRepository(nil)

	incoming := make([]player.Player, 0, 25)
	for idx := 1; idx <= 25; idx++ {
		incoming = append(incoming, player.Player{Index: idx, Name: "Player", Team: "Celtic"})
	}

	service := NewImportService(playerRepo, playerRepo, teamRepo, nil)
	result, err := service.Import(ctx, ImportInput{
		Players:    staticPlayers(incoming),
		Teams:      staticTeams([]team.Team{{Name: "Celtic", Rank: intPtr(21)}, {Name: "Arsenal", Rank: intPtr(3)}}),
		BatchSize:  10,
		MaxWorkers: 3,
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if result.PlayersRead != 25 || result.PlayersSkipped != 1 || result.PlayersWritten != 24 {
		t.Fatalf("unexpected player counts: %+v", result)
	}
	if result.Batches != 3 || result.FailedBatches != 0 {
		t.Fatalf("unexpected batch counts: %+v", result)
	}
	if result.TeamsWritten != 2 {
		t.Fatalf("unexpected team count: %+v", result)
	}

	stored, _ := playerRepo.ListAll(ctx)
	if len(stored) != 25 || stored[0].Name != "Already Stored" {
		t.Fatalf("unexpected stored players: %d first=%q", len(stored), stored[0].Name)
	}

	if got := result.Consistency.StandingTeamsWithoutPlayers; len(got) != 1 || got[0] != "Arsenal" {
		t.Fatalf("unexpected consistency report: %+v", result.Consistency)
	}
	if len(result.Consistency.PlayerTeamsMissingFromStanding) != 0 {
		t.Fatalf("unexpected missing standing teams: %+v", result.Consistency)
	}
}

func TestImportService_DryRunDoesNotWriteUsingMockery(t *testing.T) {
	repo := playermock.NewRepository(t)
	writer := playermock.NewWriter(t)
	teamWriter := teammock.NewWriter(t)

	service := NewImportService(repo, writer, teamWriter, nil)
	result, err := service.Import(context.Background(), ImportInput{
		Players: staticPlayers([]player.Player{{Index: 1, Name: "A", Team: "Red Star"}}),
		Teams:   staticTeams([]team.Team{{Name: "Celtic"}}),
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if result.PlayersWritten != 0 || result.TeamsWritten != 0 {
		t.Fatalf("dry run must not write: %+v", result)
	}
	if result.Consistency.Consistent() {
		t.Fatalf("expected inconsistency to be reported")
	}
}

func TestImportService_LoaderErrorStopsImport(t *testing.T) {
	loadErr := errors.New("players.csv:4: column \"MP\": invalid integer")
	service := NewImportService(playermock.NewRepository(t), playermock.NewWriter(t), teammock.NewWriter(t), nil)

	_, err := service.Import(context.Background(), ImportInput{
		Players: func(context.Context) ([]player.Player, error) { return nil, loadErr },
		Teams:   staticTeams(nil),
	})
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

func TestImportService_FailedBatchIsReported(t *testing.T) {
	repo := playermock.NewRepository(t)
	writer := playermock.NewWriter(t)
	teamWriter := teammock.NewWriter(t)
	insertErr := errors.New("disk full")

	teamWriter.On("Upsert", mock.Anything).Return(nil).Once()
	repo.On("ListAll", mock.Anything).Return([]player.Player{}, nil).Once()
	writer.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(insertErr).Once()

	service := NewImportService(repo, writer, teamWriter, nil)
	result, err := service.Import(context.Background(), ImportInput{
		Players: staticPlayers([]player.Player{{Index: 1, Name: "A"}, {Index: 2, Name: "B"}}),
		Teams:   staticTeams(nil),
	})
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
	if result.FailedBatches != 1 || result.PlayersWritten != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestImportService_RequiresLoaders(t *testing.T) {
	service := NewImportService(nil, nil, nil, nil)
	if _, err := service.Import(context.Background(), ImportInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
