package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"listing_pipeline/internal/config"
	"listing_pipeline/internal/domain"
	"listing_pipeline/internal/service"
)

// PipelineAPI accepts bulk uploads and reports job status.
type PipelineAPI interface {
	StartJob(ctx context.Context, ownerID string, photoPaths []string, styleHint string) (string, error)
	GetJob(jobID string) (domain.Job, error)
}

// DraftAPI reads and edits listing drafts.
type DraftAPI interface {
	Get(ctx context.Context, id string) (*domain.Draft, error)
	ApplyEdit(ctx context.Context, id string, edit service.DraftEdit) (*domain.Draft, error)
}

// PublishAPI runs the two-phase publish protocol.
type PublishAPI interface {
	Prepare(ctx context.Context, draftID string, dryRun bool) (*service.PrepareResult, error)
	Publish(ctx context.Context, req service.PublishRequest) (*service.PublishResult, error)
}

// Server exposes the pipeline over HTTP.
type Server struct {
	cfg      config.ServerConfig
	logger   *slog.Logger
	pipeline PipelineAPI
	drafts   DraftAPI
	publish  PublishAPI
}

func New(cfg config.ServerConfig, pipeline PipelineAPI, drafts DraftAPI, publish PublishAPI, logger *slog.Logger) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger.With("component", "http"),
		pipeline: pipeline,
		drafts:   drafts,
		publish:  publish,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/jobs", s.handleCreateJob)
		r.Get("/jobs/{jobID}", s.handleGetJob)

		r.Get("/drafts/{draftID}", s.handleGetDraft)
		r.Patch("/drafts/{draftID}", s.handleEditDraft)
		r.Post("/drafts/{draftID}/prepare", s.handlePrepare)
		r.Post("/drafts/{draftID}/publish", s.handlePublish)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("http server listening", "addr", s.cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
