package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	sonic "github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/fantasy-football/external/fbref"
	"github.com/riskibarqy/fantasy-football/internal/app"
	"github.com/riskibarqy/fantasy-football/internal/config"
	"github.com/riskibarqy/fantasy-football/internal/domain/player"
	"github.com/riskibarqy/fantasy-football/internal/domain/team"
	"github.com/riskibarqy/fantasy-football/internal/infrastructure/csvsource"
	"github.com/riskibarqy/fantasy-football/internal/platform/logging"
	"github.com/riskibarqy/fantasy-football/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env", ".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	playersFile := flag.String("players", cfg.ImportPlayersFile, "player table CSV path or http(s) URL (all_teams_ucl layout)")
	standingFile := flag.String("standing", cfg.ImportStandingFile, "standing table CSV path or http(s) URL")
	batchSize := flag.Int("batch", cfg.ImportBatchSize, "rows per player insert")
	workers := flag.Int("workers", cfg.ImportMaxWorkers, "concurrent player batch inserts")
	dryRun := flag.Bool("dry-run", false, "parse and report without writing")
	flag.Parse()

	logger := logging.New(os.Stderr, cfg.LogLevel).With("service", cfg.ServiceName, "command", "importer")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := fbref.NewClient(fbref.ClientConfig{
		Timeout:    cfg.ImportHTTPTimeout,
		MaxRetries: cfg.ImportHTTPMaxRetries,
		Logger:     logger,
	})

	if err := run(ctx, cfg, logger, usecase.ImportInput{
		Players:    playerLoader(fetcher, *playersFile),
		Teams:      teamLoader(fetcher, *standingFile),
		BatchSize:  *batchSize,
		MaxWorkers: *workers,
		DryRun:     *dryRun,
	}); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, input usecase.ImportInput) error {
	service, closeStores, err := app.NewImportService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStores(); err != nil {
			logger.Warn("close stores", "error", err)
		}
	}()

	result, err := service.Import(ctx, input)
	if err != nil {
		return err
	}

	enc := sonic.ConfigDefault.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if result.FailedBatches > 0 {
		return fmt.Errorf("%d player batch(es) failed", result.FailedBatches)
	}
	return nil
}

// openSource returns the export body from disk or, for http(s) sources, from the remote host.
func openSource(ctx context.Context, fetcher *fbref.Client, source string) (io.ReadCloser, error) {
	if fbref.IsRemote(source) {
		raw, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(raw)), nil
	}
	return os.Open(source)
}

func playerLoader(fetcher *fbref.Client, source string) usecase.PlayerLoader {
	return func(ctx context.Context) ([]player.Player, error) {
		body, err := openSource(ctx, fetcher, source)
		if err != nil {
			return nil, fmt.Errorf("open player table: %w", err)
		}
		defer body.Close()
		return csvsource.ReadPlayers(body, source)
	}
}

func teamLoader(fetcher *fbref.Client, source string) usecase.TeamLoader {
	return func(ctx context.Context) ([]team.Team, error) {
		body, err := openSource(ctx, fetcher, source)
		if err != nil {
			return nil, fmt.Errorf("open standing table: %w", err)
		}
		defer body.Close()
		return csvsource.ReadTeams(body, source)
	}
}
