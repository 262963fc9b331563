package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"listing_pipeline/internal/domain"
	"listing_pipeline/internal/service"
)

type createJobRequest struct {
	OwnerID    string   `json:"owner_id"`
	PhotoPaths []string `json:"photo_paths"`
	StyleHint  string   `json:"style_hint"`
}

type createJobResponse struct {
	JobID string `json:"job_id"`
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	jobID, err := s.pipeline.StartJob(r.Context(), req.OwnerID, req.PhotoPaths, req.StyleHint)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusAccepted, createJobResponse{JobID: jobID})
}

type jobResponse struct {
	JobID           string     `json:"job_id"`
	OwnerID         string     `json:"owner_id"`
	Status          string     `json:"status"`
	ProgressPercent float64    `json:"progress_percent"`
	Phase           string     `json:"phase,omitempty"`
	TotalPhotos     int        `json:"total_photos"`
	TotalItems      int        `json:"total_items"`
	CompletedItems  int        `json:"completed_items"`
	FailedItems     int        `json:"failed_items"`
	Drafts          []string   `json:"drafts"`
	Errors          []string   `json:"errors"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.pipeline.GetJob(chi.URLParam(r, "jobID"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, jobResponse{
		JobID:           job.ID,
		OwnerID:         job.OwnerID,
		Status:          string(job.Status),
		ProgressPercent: job.ProgressPercent,
		Phase:           job.Phase,
		TotalPhotos:     job.TotalPhotos,
		TotalItems:      job.TotalItems,
		CompletedItems:  job.CompletedItems,
		FailedItems:     job.FailedItems,
		Drafts:          emptyIfNil(job.DraftIDs),
		Errors:          emptyIfNil(job.Errors),
		StartedAt:       job.StartedAt,
		CompletedAt:     job.CompletedAt,
	})
}

type draftResponse struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"owner_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	Category         string    `json:"category"`
	Condition        string    `json:"condition"`
	Color            string    `json:"color"`
	Brand            string    `json:"brand"`
	Size             string    `json:"size"`
	Photos           []string  `json:"photos"`
	Status           string    `json:"status"`
	Confidence       float64   `json:"confidence"`
	PriceMin         *float64  `json:"price_min,omitempty"`
	PriceSuggested   *float64  `json:"price_suggested,omitempty"`
	PriceMax         *float64  `json:"price_max,omitempty"`
	PublishReady     bool      `json:"publish_ready"`
	ContentValidated bool      `json:"content_validated"`
	PhotosValidated  bool      `json:"photos_validated"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func draftToResponse(d *domain.Draft) draftResponse {
	return draftResponse{
		ID:               d.ID,
		OwnerID:          d.OwnerID,
		Title:            d.Title,
		Description:      d.Description,
		Price:            d.Price,
		Category:         d.Category,
		Condition:        d.Condition,
		Color:            d.Color,
		Brand:            d.Brand,
		Size:             d.Size,
		Photos:           emptyIfNil(d.Photos),
		Status:           string(d.Status),
		Confidence:       d.Confidence,
		PriceMin:         d.PriceMin,
		PriceSuggested:   d.PriceSuggested,
		PriceMax:         d.PriceMax,
		PublishReady:     d.PublishReady,
		ContentValidated: d.ContentValidated,
		PhotosValidated:  d.PhotosValidated,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.drafts.Get(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, draftToResponse(draft))
}

type editDraftRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Price            *float64  `json:"price"`
	Category         *string   `json:"category"`
	Condition        *string   `json:"condition"`
	Color            *string   `json:"color"`
	Brand            *string   `json:"brand"`
	Size             *string   `json:"size"`
	Photos           *[]string `json:"photos"`
	PriceMin         *float64  `json:"price_min"`
	PriceSuggested   *float64  `json:"price_suggested"`
	PriceMax         *float64  `json:"price_max"`
	PublishReady     *bool     `json:"publish_ready"`
	ContentValidated *bool     `json:"content_validated"`
	PhotosValidated  *bool     `json:"photos_validated"`
}

func (s *Server) handleEditDraft(w http.ResponseWriter, r *http.Request) {
	var req editDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := s.drafts.ApplyEdit(r.Context(), chi.URLParam(r, "draftID"), service.DraftEdit{
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		Category:         req.Category,
		Condition:        req.Condition,
		Color:            req.Color,
		Brand:            req.Brand,
		Size:             req.Size,
		Photos:           req.Photos,
		PriceMin:         req.PriceMin,
		PriceSuggested:   req.PriceSuggested,
		PriceMax:         req.PriceMax,
		PublishReady:     req.PublishReady,
		ContentValidated: req.ContentValidated,
		PhotosValidated:  req.PhotosValidated,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, draftToResponse(draft))
}

type prepareRequest struct {
	DryRun bool `json:"dry_run"`
}

type prepareResponse struct {
	ConfirmToken string                 `json:"confirm_token"`
	ExpiresAt    time.Time              `json:"expires_at"`
	Snapshot     domain.ListingSnapshot `json:"snapshot"`
}

func (s *Server) handlePrepare(w http.ResponseWriter, r *http.Request) {
	var req prepareRequest
	// The body is optional; an empty body means a real prepare.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.publish.Prepare(r.Context(), chi.URLParam(r, "draftID"), req.DryRun)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, prepareResponse{
		ConfirmToken: result.ConfirmToken,
		ExpiresAt:    result.ExpiresAt,
		Snapshot:     result.Snapshot,
	})
}

type publishRequest struct {
	ConfirmToken string `json:"confirm_token"`
	DryRun       bool   `json:"dry_run"`
}

type publishResponse struct {
	Status       string `json:"status"`
	ListingID    string `json:"listing_id,omitempty"`
	ListingURL   string `json:"listing_url,omitempty"`
	ManualAction bool   `json:"manual_action"`
	Message      string `json:"message,omitempty"`
	DryRun       bool   `json:"dry_run"`
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.publish.Publish(r.Context(), service.PublishRequest{
		DraftID:        chi.URLParam(r, "draftID"),
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
		ConfirmToken:   req.ConfirmToken,
		DryRun:         req.DryRun,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, publishResponse{
		Status:       string(result.Status),
		ListingID:    result.ListingID,
		ListingURL:   result.ListingURL,
		ManualAction: result.ManualAction,
		Message:      result.Message,
		DryRun:       result.DryRun,
	})
}

type errorResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons,omitempty"`
}

// writeDomainError maps service errors onto HTTP statuses.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		expiredErr    *domain.ExpiredTokenError
		invalidErr    *domain.InvalidTokenError
		externalErr   *domain.ExternalServiceError
	)

	switch {
	case errors.As(err, &validationErr):
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation failed",
			Reasons: validationErr.Reasons,
		})
	case errors.As(err, &conflictErr):
		s.writeError(w, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &expiredErr):
		s.writeError(w, http.StatusUnauthorized, expiredErr.Error())
	case errors.As(err, &invalidErr):
		s.writeError(w, http.StatusUnauthorized, invalidErr.Error())
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrDraftNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrQuotaExceeded):
		s.writeError(w, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &externalErr):
		s.writeError(w, http.StatusBadGateway, externalErr.Error())
	default:
		s.logger.Error("request failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

func emptyIfNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
