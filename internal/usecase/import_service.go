package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultImportBatchSize = 200
	defaultImportWorkers   = 4
)

// PlayerLoader and TeamLoader produce parsed rows, typically from CSV exports.
type (
	PlayerLoader func(ctx context.Context) ([]player.Player, error)
	TeamLoader   func(ctx context.Context) ([]team.Team, error)
)

type ImportInput struct {
	Players PlayerLoader
	Teams   TeamLoader
	// BatchSize bounds the rows per player insert statement.
	BatchSize int
	// MaxWorkers bounds concurrent player batch inserts.
	MaxWorkers int
	// DryRun parses and reports without writing.
	DryRun bool
}

type ImportResult struct {
	PlayersRead    int               `json:"players_read"`
	PlayersWritten int               `json:"players_written"`
	PlayersSkipped int               `json:"players_skipped"`
	TeamsRead      int               `json:"teams_read"`
	TeamsWritten   int               `json:"teams_written"`
	Batches        int               `json:"batches"`
	FailedBatches  int               `json:"failed_batches"`
	Consistency    ConsistencyReport `json:"consistency"`
}

// ConsistencyReport lists club names that appear on only one side of the player/standing pair.
type ConsistencyReport struct {
	PlayerTeamsMissingFromStanding []string `json:"player_teams_missing_from_standing"`
	StandingTeamsWithoutPlayers    []string `json:"standing_teams_without_players"`
}

func (r ConsistencyReport) Consistent() bool {
	return len(r.PlayerTeamsMissingFromStanding) == 0 && len(r.StandingTeamsWithoutPlayers) == 0
}

type ImportService struct {
	playerRepo   player.Repository
	playerWriter player.Writer
	teamWriter   team.Writer
	logger       *logging.Logger
}

func NewImportService(playerRepo player.Repository, playerWriter player.Writer, teamWriter team.Writer, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ImportService{
		playerRepo:   playerRepo,
		playerWriter: playerWriter,
		teamWriter:   teamWriter,
		logger:       logger,
	}
}

// Import loads both sources concurrently, upserts teams, then inserts players whose index is not stored yet.
// Existing players are left untouched so a re-run only adds new rows.
func (s *ImportService) Import(ctx context.Context, input ImportInput) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	if input.Players == nil || input.Teams == nil {
		return ImportResult{}, failSpan(span, fmt.Errorf("%w: player and team loaders are required", ErrInvalidInput))
	}
	batchSize := input.BatchSize
	if batchSize <= 0 {
		batchSize = defaultImportBatchSize
	}
	workers := input.MaxWorkers
	if workers <= 0 {
		workers = defaultImportWorkers
	}

	players, teams, err := loadSources(ctx, input.Players, input.Teams)
	if err != nil {
		return ImportResult{}, failSpan(span, err)
	}

	result := ImportResult{
		PlayersRead: len(players),
		TeamsRead:   len(teams),
		Consistency: checkConsistency(players, teams),
	}
	if !result.Consistency.Consistent() {
		s.logger.WarnContext(ctx, "player teams and standing squads differ",
			"missing_from_standing", result.Consistency.PlayerTeamsMissingFromStanding,
			"without_players", result.Consistency.StandingTeamsWithoutPlayers,
		)
	}
	if input.DryRun {
		return result, nil
	}

	if err := s.teamWriter.Upsert(ctx, teams...); err != nil {
		return result, failSpan(span, fmt.Errorf("upsert teams: %w", err))
	}
	result.TeamsWritten = len(teams)

	fresh, err := s.withoutStoredPlayers(ctx, players)
	if err != nil {
		return result, failSpan(span, err)
	}
	result.PlayersSkipped = len(players) - len(fresh)

	written, batches, failed, err := s.insertBatches(ctx, fresh, batchSize, workers)
	result.PlayersWritten = written
	result.Batches = batches
	result.FailedBatches = failed

	s.logger.InfoContext(ctx, "import finished",
		"players_read", result.PlayersRead,
		"players_written", result.PlayersWritten,
		"players_skipped", result.PlayersSkipped,
		"teams_written", result.TeamsWritten,
		"failed_batches", result.FailedBatches,
	)
	return result, failSpan(span, err)
}

func loadSources(ctx context.Context, loadPlayers PlayerLoader, loadTeams TeamLoader) ([]player.Player, []team.Team, error) {
	var (
		players []player.Player
		teams   []team.Team
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := loadPlayers(ctx)
		if err != nil {
			return crerr.Wrap(err, "load players")
		}
		players = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := loadTeams(ctx)
		if err != nil {
			return crerr.Wrap(err, "load teams")
		}
		teams = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return players, teams, nil
}

func (s *ImportService) withoutStoredPlayers(ctx context.Context, items []player.Player) ([]player.Player, error) {
	stored, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored players: %w", err)
	}

	known := make(map[int]struct{}, len(stored)+len(items))
	for _, p := range stored {
		known[p.Index] = struct{}{}
	}

	out := make([]player.Player, 0, len(items))
	for _, p := range items {
		if _, ok := known[p.Index]; ok {
			continue
		}
		known[p.Index] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func (s *ImportService) insertBatches(ctx context.Context, items []player.Player, batchSize, workers int) (int, int, int, error) {
	if len(items) == 0 {
		return 0, 0, 0, nil
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		written  atomic.Int32
		failed   atomic.Int32
		batches  int
		errMu    sync.Mutex
		combined error
		wg       sync.WaitGroup
	)

	for start := 0; start < len(items); start += batchSize {
		end := min(start+batchSize, len(items))
		batch := items[start:end]
		batches++

		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			if err := s.playerWriter.Insert(ctx, batch...); err != nil {
				failed.Add(1)
				errMu.Lock()
				combined = crerr.CombineErrors(combined,
					crerr.Wrapf(err, "insert players %d-%d", batch[0].Index, batch[len(batch)-1].Index))
				errMu.Unlock()
				return
			}
			written.Add(int32(len(batch)))
		}); err != nil {
			wg.Done()
			wg.Wait()
			return int(written.Load()), batches, int(failed.Load()), fmt.Errorf("submit batch to worker pool: %w", err)
		}
	}

	wg.Wait()
	return int(written.Load()), batches, int(failed.Load()), combined
}

func checkConsistency(players []player.Player, teams []team.Team) ConsistencyReport {
	playerTeams := make(map[string]struct{})
	for _, p := range players {
		if p.Team != "" {
			playerTeams[p.Team] = struct{}{}
		}
	}
	standing := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		standing[t.Name] = struct{}{}
	}

	report := ConsistencyReport{
		PlayerTeamsMissingFromStanding: difference(playerTeams, standing),
		StandingTeamsWithoutPlayers:    difference(standing, playerTeams),
	}
	return report
}

func difference(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for name := range a {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
