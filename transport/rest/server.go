package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/rocketscienceinc/lightsout-backend/internal/entity"
	"github.com/rocketscienceinc/lightsout-backend/internal/lightsout"
)

type gameUseCase interface {
	NewGame(ctx context.Context, overrides lightsout.Overrides) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	Flip(ctx context.Context, id string, row, col int) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	logger  *slog.Logger
	games   gameUseCase
	storage pinger
}

func New(logger *slog.Logger, games gameUseCase, storage pinger) *Server {
	return &Server{
		logger:  logger.With("component", "rest"),
		games:   games,
		storage: storage,
	}
}

// Handler - router with every REST route and middleware.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(that.logRequests)
	router.Use(cors.New(cors.Options{
		AllowOriginFunc: func(string) bool { return true },
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	}).Handler)

	router.Get("/ping", that.handlePing)

	router.Route("/games", func(r chi.Router) {
		r.Post("/", that.handleNewGame)
		r.Get("/{id}", that.handleGetGame)
		r.Post("/{id}/flip", that.handleFlip)
		r.Delete("/{id}", that.handleDeleteGame)
	})

	return router
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		that.logger.Info(
			"handled request",
			slog.String("requestID", middleware.GetReqID(r.Context())),
			slog.Int("statusCode", wrapped.Status()),
			slog.String("method", r.Method),
			slog.String("uri", r.URL.RequestURI()),
			slog.Int64("durationMs", time.Since(start).Milliseconds()),
		)
	})
}
