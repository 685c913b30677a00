package http

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/superdesk/deskconf"
)

// Resolved is the read side of a resolved configuration.
// *deskconf.ResolvedConfig implements it.
type Resolved interface {
	Document() deskconf.Document
	Get(key string) (any, error)
}

type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type HandlerConfig struct {
	Schema *deskconf.Schema
	CORS   CORSConfig
	Logger *slog.Logger
}

// Handler serves a resolved configuration read-only.
type Handler struct {
	config   HandlerConfig
	resolved Resolved
}

// NewHandler creates a new Handler with the given configuration and resolved document.
// A nil Schema falls back to deskconf.DefaultSchema and a nil Logger to slog.Default.
func NewHandler(config *HandlerConfig, resolved Resolved) *Handler {
	cfg := *config
	if cfg.Schema == nil {
		cfg.Schema = deskconf.DefaultSchema()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Handler{
		config:   cfg,
		resolved: resolved,
	}
}

// Router returns an http.Handler with all read-only routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(h.config.Logger))

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   []string{"ETag"},
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Get("/healthz", h.handleHealth)
	r.Get("/config.json", h.handleConfig)
	r.Get("/config/{key}", h.handleKey)
	r.Get("/schema", h.handleSchema)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "not_found", "Route not found")
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(map[string]any(h.resolved.Document()))
	if err != nil {
		HandleError(w, fmt.Errorf("encode config: %w", err))
		return
	}

	sum := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:16]) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// validKeyRegex accepts every key a lenient document can carry through
// a single path segment.
var validKeyRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.\-]*$`)

func (h *Handler) handleKey(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !validKeyRegex.MatchString(key) {
		HandleError(w, fmt.Errorf("%w: %q", ErrInvalidKey, key))
		return
	}

	value, err := h.resolved.Get(key)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, map[string]any{
		"key":   key,
		"value": value,
	})
}

func (h *Handler) handleSchema(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, h.config.Schema.Describe())
}
