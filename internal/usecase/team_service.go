package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"go.opentelemetry.io/otel/attribute"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.listMatching(ctx, team.MatchAll())
	return items, failSpan(span, err)
}

func (s *TeamService) ListTeamsByName(ctx context.Context, name string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamsByName", attribute.String("team.name", name))
	defer span.End()

	items, err := s.listMatching(ctx, team.MatchName(name))
	return items, failSpan(span, err)
}

func (s *TeamService) ListTeamsByRank(ctx context.Context, rank int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamsByRank", attribute.Int("team.rank", rank))
	defer span.End()

	items, err := s.listMatching(ctx, team.MatchRank(rank))
	return items, failSpan(span, err)
}

func (s *TeamService) ListTeamsByPoints(ctx context.Context, points int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeamsByPoints", attribute.Int("team.points", points))
	defer span.End()

	items, err := s.listMatching(ctx, team.MatchPoints(points))
	return items, failSpan(span, err)
}

func (s *TeamService) listMatching(ctx context.Context, pred team.Predicate) ([]team.Team, error) {
	items, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return team.Filter(items, pred), nil
}
