package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateOutcome tags the result of a replace-by-name update.
type UpdateOutcome string

const (
	UpdateReplaced UpdateOutcome = "replaced"
	UpdateNotFound UpdateOutcome = "not_found"
)

// UpdateResult carries the stored replacement when Outcome is UpdateReplaced.
type UpdateResult struct {
	Outcome UpdateOutcome
	Player  player.Player
}

func (r UpdateResult) Replaced() bool {
	return r.Outcome == UpdateReplaced
}

type PlayerService struct {
	playerRepo   player.Repository
	playerWriter player.Writer
	logger       *logging.Logger
}

// NewPlayerService wires the read path; writer may be nil, which disables mutations.
func NewPlayerService(playerRepo player.Repository, playerWriter player.Writer, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo:   playerRepo,
		playerWriter: playerWriter,
		logger:       logger,
	}
}

// ListPlayers loads the whole table and applies the criteria branch selected by player.Criteria.Branch.
func (s *PlayerService) ListPlayers(ctx context.Context, criteria player.Criteria) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers",
		attribute.String("player.filter.branch", string(criteria.Branch())),
	)
	defer span.End()

	items, err := s.listMatching(ctx, criteria.Predicate())
	return items, failSpan(span, err)
}

func (s *PlayerService) ListPlayersByAge(ctx context.Context, age int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByAge", attribute.Int("player.age", age))
	defer span.End()

	items, err := s.listMatching(ctx, player.MatchAge(age))
	return items, failSpan(span, err)
}

func (s *PlayerService) listMatching(ctx context.Context, pred player.Predicate) ([]player.Player, error) {
	items, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return player.Filter(items, pred), nil
}

func (s *PlayerService) AddPlayer(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddPlayer")
	defer span.End()

	if err := s.requireWriter(); err != nil {
		return player.Player{}, err
	}
	item = trimPlayer(item)
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.playerRepo.GetByKey(ctx, item.Index)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by index: %w", err)
	}
	if exists {
		return player.Player{}, fmt.Errorf("%w: player index=%d", ErrAlreadyExists, item.Index)
	}

	if err := s.playerWriter.Insert(ctx, item); err != nil {
		if errors.Is(err, player.ErrDuplicateIndex) {
			return player.Player{}, fmt.Errorf("%w: player index=%d", ErrAlreadyExists, item.Index)
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	s.logger.InfoContext(ctx, "player added", "index", item.Index, "name", item.Name)
	return item, nil
}

// UpdatePlayer replaces the row whose name equals item.Name. A missing name is not an error.
func (s *PlayerService) UpdatePlayer(ctx context.Context, item player.Player) (UpdateResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if err := s.requireWriter(); err != nil {
		return UpdateResult{}, err
	}
	item = trimPlayer(item)
	if err := item.Validate(); err != nil {
		return UpdateResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	replaced, err := s.playerWriter.ReplaceByName(ctx, item)
	if err != nil {
		if errors.Is(err, player.ErrDuplicateIndex) {
			return UpdateResult{}, fmt.Errorf("%w: player index=%d", ErrAlreadyExists, item.Index)
		}
		return UpdateResult{}, fmt.Errorf("replace player by name: %w", err)
	}
	if !replaced {
		s.logger.InfoContext(ctx, "player update skipped, name not found", "name", item.Name)
		return UpdateResult{Outcome: UpdateNotFound}, nil
	}

	s.logger.InfoContext(ctx, "player replaced", "index", item.Index, "name", item.Name)
	return UpdateResult{Outcome: UpdateReplaced, Player: item}, nil
}

// DeletePlayer removes the player with exactly this name; a missing name yields false.
func (s *PlayerService) DeletePlayer(ctx context.Context, name string) (player.Player, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if err := s.requireWriter(); err != nil {
		return player.Player{}, false, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return player.Player{}, false, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	deleted, exists, err := s.playerWriter.DeleteByName(ctx, name)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("delete player by name: %w", err)
	}
	if exists {
		s.logger.InfoContext(ctx, "player deleted", "index", deleted.Index, "name", deleted.Name)
	}

	return deleted, exists, nil
}

func (s *PlayerService) requireWriter() error {
	if s.playerWriter == nil {
		return fmt.Errorf("%w: player writes are disabled", ErrDependencyUnavailable)
	}
	return nil
}

func trimPlayer(item player.Player) player.Player {
	item.Name = strings.TrimSpace(item.Name)
	item.Nation = strings.TrimSpace(item.Nation)
	item.Position = strings.TrimSpace(item.Position)
	item.Team = strings.TrimSpace(item.Team)
	return item
}
