package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-football/internal/config"
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
	"github.com/riskibarqy/fantasy-football/internal/usecase"
)

func testConfig(driver, dsn string) config.Config {
	return config.Config{
		AppEnv:                  config.EnvDev,
		HTTPAddr:                ":0",
		ReadTimeout:             time.Second,
		WriteTimeout:            time.Second,
		DBDriver:                driver,
		DBURL:                   dsn,
		DBMaxOpenConns:          4,
		DBCircuitFailureCount:   5,
		DBCircuitOpenTimeout:    time.Second,
		DBCircuitHalfOpenMaxReq: 1,
		CacheTTL:                time.Minute,
		CORSAllowedOrigins:      []string{"http://localhost:5173"},
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNewHTTPServer_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig(config.DBDriverMemory, "")
	cfg.HTTPAddr = " "

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewHTTPServer_MemoryDriver(t *testing.T) {
	cfg := testConfig(config.DBDriverMemory, "")
	cfg.CacheEnabled = true
	cfg.DBCircuitEnabled = true

	srv, cleanup, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	rec := get(t, srv.Handler, "/api/v1/players?team=real")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var players []player.Player
	if err := sonic.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("unmarshal players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 Real Madrid players, got %d", len(players))
	}

	rec = get(t, srv.Handler, "/api/v1/teams/rank/1")
	if !strings.Contains(rec.Body.String(), "Liverpool") {
		t.Fatalf("expected Liverpool at rank 1, got %s", rec.Body.String())
	}
}

func TestOpenStores_UnsupportedDriver(t *testing.T) {
	cfg := testConfig("mysql", "root@tcp(localhost)/x")

	if _, err := OpenStores(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestSQLiteImportThenServe(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.DBDriverSQLite, ":memory:")

	importer, closeImporter, err := NewImportService(ctx, cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build importer: %v", err)
	}
	t.Cleanup(func() { _ = closeImporter() })

	age := 23
	rank := 15
	result, err := importer.Import(ctx, usecase.ImportInput{
		Players: func(context.Context) ([]player.Player, error) {
			return []player.Player{{Index: 1, Name: "Warren Zaire-Emery", Team: "Paris Saint-Germain", Age: &age}}, nil
		},
		Teams: func(context.Context) ([]team.Team, error) {
			return []team.Team{{Name: "Paris Saint-Germain", Rank: &rank}}, nil
		},
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if result.PlayersWritten != 1 || result.TeamsWritten != 1 {
		t.Fatalf("unexpected import result: %+v", result)
	}

	// A fresh in-memory database is empty, so a second wiring must migrate cleanly and serve [].
	srv, cleanup, err := NewHTTPServer(ctx, cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	rec := get(t, srv.Handler, "/api/v1/players")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list from fresh database, got %d %s", rec.Code, rec.Body.String())
	}
}
