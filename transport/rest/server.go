package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

// Start - serves the read-only view of a solved graph until the context is
// canceled. The graph is never mutated after the solve, so no handler needs
// locking.
func Start(ctx context.Context, logger *slog.Logger, port string, graph *solver.Graph) error {
	h := newHandlers(logger, graph)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", h.Ping)
	mux.HandleFunc("GET /root", h.Root)
	mux.HandleFunc("GET /summary", h.Summary)
	mux.HandleFunc("GET /position", h.Position)
	mux.HandleFunc("GET /children", h.Children)
	mux.HandleFunc("GET /parents", h.Parents)
	mux.HandleFunc("GET /leaves", h.Leaves)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
