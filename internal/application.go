package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/render"
	"github.com/rocketscienceinc/tictactoe-solver/internal/report"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
)

// RunApp - solves the game and runs the configured mode against the result.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	started := time.Now()

	graph, err := solver.Solve()
	if err != nil {
		return fmt.Errorf("could not solve game: %w", err)
	}

	duration := time.Since(started)

	summary, err := report.Summarize(graph)
	if err != nil {
		return fmt.Errorf("could not summarize graph: %w", err)
	}

	log.Info("Solved game",
		"positions", summary.Positions,
		"leaves", summary.Leaves,
		"wins", summary.Wins,
		"losses", summary.Losses,
		"ties", summary.Ties,
		"root_value", summary.RootValue,
		"duration", duration,
	)

	if conf.SQLiteStoragePath != "" {
		if err = archiveSummary(ctx, conf.SQLiteStoragePath, summary, duration); err != nil {
			return err
		}
	}

	if conf.Redis.Enabled {
		if err = persistGraph(ctx, log, conf.Redis.GetRedisAddr(), graph); err != nil {
			return err
		}
	}

	switch conf.Mode {
	case config.ModeReport:
		if err = printOptimalLine(graph); err != nil {
			return err
		}
		return nil
	case config.ModeLinks:
		if conf.ArtifactsDir != "" {
			log.Info("Writing artifact pages", "dir", conf.ArtifactsDir)
			if err = report.WriteArtifacts(conf.ArtifactsDir, graph); err != nil {
				return fmt.Errorf("could not write artifacts: %w", err)
			}
			return nil
		}

		if err = report.WriteLinks(os.Stdout, graph); err != nil {
			return fmt.Errorf("could not write links: %w", err)
		}
		return nil
	case config.ModeServe:
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err = rest.Start(ctx, logger, conf.HTTPPort, graph); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown mode %q", conf.Mode)
	}
}

// printOptimalLine - renders one optimal playout from the root, board by
// board, on stdout.
func printOptimalLine(graph *solver.Graph) error {
	line, err := report.OptimalLine(graph)
	if err != nil {
		return fmt.Errorf("could not trace optimal line: %w", err)
	}

	renderer := render.NewDefault()

	for _, key := range line {
		node, err := graph.Lookup(key)
		if err != nil {
			return fmt.Errorf("could not trace optimal line: %w", err)
		}

		fmt.Fprintln(os.Stdout, renderer.Grid(node.Position))
	}

	return nil
}

// archiveSummary - appends the run's aggregates to the local SQLite archive.
func archiveSummary(ctx context.Context, path string, summary report.Summary, duration time.Duration) error {
	db, err := sqlite.New(path)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err = db.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	if err = db.SaveSummary(ctx, summary, duration); err != nil {
		return fmt.Errorf("could not save summary: %w", err)
	}

	return nil
}

// persistGraph - stores every solved position in Redis for other consumers.
func persistGraph(ctx context.Context, log *slog.Logger, addr string, graph *solver.Graph) error {
	redisStorage, err := storage.New(ctx, addr)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	positionRepo := repository.NewPositionRepository(redisStorage.Connection)

	keys := graph.Keys()
	records := make([]*repository.PositionRecord, 0, len(keys))
	for _, key := range keys {
		record, err := repository.NewPositionRecord(graph, key)
		if err != nil {
			return fmt.Errorf("could not build record for %q: %w", key, err)
		}
		records = append(records, record)
	}

	if err = positionRepo.SaveAll(ctx, records); err != nil {
		return fmt.Errorf("could not persist graph: %w", err)
	}

	log.Info("Persisted solved graph", "positions", len(records))

	return nil
}
