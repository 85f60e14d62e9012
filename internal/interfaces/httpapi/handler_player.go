package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

// ListPlayers dispatches on the name, team, nation and position query keys.
// A key that is present with an empty value still selects its branch.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers", attribute.Int("http.query.keys", len(query)))
	defer span.End()

	criteria := player.Criteria{
		Name:     optionalQuery(query, "name"),
		Team:     optionalQuery(query, "team"),
		Nation:   optionalQuery(query, "nation"),
		Position: optionalQuery(query, "position"),
	}

	items, err := h.playerService.ListPlayers(ctx, criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "branch", string(criteria.Branch()), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, items)
}

func (h *Handler) ListPlayersByAge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByAge")
	defer span.End()

	age, err := pathInt(r, "age")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.ListPlayersByAge(ctx, age)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players by age failed", "age", age, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, items)
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	var req player.Player
	if err := decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.AddPlayer(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "index", req.Index, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, created)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	var req player.Player
	if err := decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.playerService.UpdatePlayer(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !result.Replaced() {
		writeError(ctx, w, fmt.Errorf("%w: player %q", usecase.ErrNotFound, req.Name))
		return
	}

	writeJSON(ctx, w, http.StatusOK, result.Player)
}

// DeletePlayer answers 200 with a null body when no player has that name.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("playerName"))
	deleted, ok, err := h.playerService.DeletePlayer(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeJSON(ctx, w, http.StatusOK, nil)
		return
	}

	writeJSON(ctx, w, http.StatusOK, deleted)
}
