package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Bahjat/seo-tag-analyzer/backend/internal/labels"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/model"
	"github.com/Bahjat/seo-tag-analyzer/backend/internal/platform/errs"
)

const analyzeTimeout = 60 * time.Second

var errURLRequired = errors.New("URL is required")

// Transport handles HTTP requests for tag analysis.
type Transport struct {
	service  *Service
	logger   *slog.Logger
	validate *validator.Validate
}

// NewTransport creates an HTTP transport backed by the given service.
func NewTransport(service *Service, logger *slog.Logger) *Transport {
	return &Transport{
		service:  service,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes attaches the transport's handlers to the given router.
func (t *Transport) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", t.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", t.handleAnalyze)
		r.Get("/labels", t.handleLabels)
	})
}

type analyzeRequest struct {
	URL string `json:"url" validate:"required"`
}

type labelsResponse struct {
	Locale string            `json:"locale"`
	Labels map[string]string `json:"labels"`
}

func (t *Transport) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	const maxRequestBody = 1 << 20 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.renderError(w, http.StatusBadRequest, "Invalid request body. Please send a JSON object with a \"url\" field.")
		return
	}

	if err := t.validate.Struct(req); err != nil {
		t.renderError(w, http.StatusBadRequest, errURLRequired.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	result, err := t.service.Analyze(ctx, req.URL)
	if err != nil {
		t.handleServiceError(w, err)
		return
	}

	t.renderJSON(w, http.StatusOK, result)
}

func (t *Transport) handleLabels(w http.ResponseWriter, r *http.Request) {
	tag := labels.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
	t.renderJSON(w, http.StatusOK, labelsResponse{
		Locale: tag.String(),
		Labels: labels.Catalog(tag),
	})
}

func (t *Transport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	t.renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (t *Transport) handleServiceError(w http.ResponseWriter, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		t.renderError(w, appErr.HTTPStatus(), appErr.Message)
		return
	}

	t.renderError(w, http.StatusInternalServerError, "Failed to analyze website")
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    message,
	})
}
