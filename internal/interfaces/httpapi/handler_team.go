package httpapi

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, items)
}

func (h *Handler) ListTeamsByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("teamName")
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByName", attribute.String("http.path.team_name", name))
	defer span.End()

	items, err := h.teamService.ListTeamsByName(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams by name failed", "team_name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, items)
}

func (h *Handler) ListTeamsByRank(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByRank")
	defer span.End()

	rank, err := pathInt(r, "teamRank")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.ListTeamsByRank(ctx, rank)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams by rank failed", "rank", rank, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, items)
}

func (h *Handler) ListTeamsByPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByPoints")
	defer span.End()

	points, err := pathInt(r, "pts")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.ListTeamsByPoints(ctx, points)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams by points failed", "points", points, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, items)
}
