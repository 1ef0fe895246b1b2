// Package server exposes the calculation engine over HTTP. The engine
// itself stays pure; the server owns the clock, request decoding, and
// response caching.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jaskichee/mortgage-calculator/internal/config"
	"github.com/jaskichee/mortgage-calculator/internal/results"
)

type handler struct {
	logger      *zap.Logger
	cache       Cache
	maxBodySize int64
	now         func() time.Time
}

// Option customizes the handler.
type Option func(*handler)

// WithCache enables cache-aside storage of computed bundles.
func WithCache(cache Cache) Option {
	return func(h *handler) { h.cache = cache }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(h *handler) { h.now = now }
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, maxBodySize int64, opts ...Option) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = 1 << 20
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Post("/api/v1/calculate", h.handleCalculate)

	return r
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleCalculate accepts a household snapshot as JSON or YAML and
// returns the computed results bundle. Identical snapshots are served
// from the cache when one is configured.
func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.maxBodySize))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	key := cacheKey(body)
	if h.cache != nil {
		if cached, ok := h.cache.Get(r.Context(), key); ok {
			h.logger.Debug("serving cached results",
				zap.String("op", "server.handleCalculate"),
				zap.String("key", key),
			)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(cached)
			return
		}
	}

	var input config.CalculatorInput
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "yaml") || strings.Contains(contentType, "yml") {
		err = yaml.Unmarshal(body, &input)
	} else {
		err = json.Unmarshal(body, &input)
	}
	if err != nil {
		h.logger.Warn("failed to decode snapshot",
			zap.String("op", "server.handleCalculate"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, "failed to decode snapshot")
		return
	}

	if err := input.ParseDates(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, warning := range input.ValidateInput() {
		h.logger.Warn("snapshot warning: "+warning,
			zap.String("op", "server.handleCalculate"),
		)
	}

	bundle := results.Compute(h.logger, &input, h.now())

	payload, err := json.Marshal(bundle)
	if err != nil {
		h.logger.Error("failed to marshal results",
			zap.String("op", "server.handleCalculate"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "failed to encode results")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), key, payload); err != nil {
			// Not critical; the next identical request just recomputes.
			h.logger.Warn("failed to cache results",
				zap.String("op", "server.handleCalculate"),
				zap.Error(err),
			)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(payload)
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
