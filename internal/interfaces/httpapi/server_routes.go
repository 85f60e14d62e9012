package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/v1/players/age/{age}", handler.ListPlayersByAge)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/v1/teams/team/{teamName}", handler.ListTeamsByName)
	mux.HandleFunc("GET /api/v1/teams/rank/{teamRank}", handler.ListTeamsByRank)
	mux.HandleFunc("GET /api/v1/teams/pts/{pts}", handler.ListTeamsByPoints)
}

// Off unless PLAYER_WRITES_ENABLED is set.
func registerPlayerWriteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/v1/players", handler.AddPlayer)
	mux.HandleFunc("PUT /api/v1/players", handler.UpdatePlayer)
	mux.HandleFunc("DELETE /api/v1/players/{playerName}", handler.DeletePlayer)
}
