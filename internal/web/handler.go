package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/todate/pkg/datefmt"
	"github.com/dmitrymomot/todate/pkg/filters"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html").
		Funcs(filters.FuncMap(nil)).
		ParseFS(templatesFS, "templates/page.html"),
)

type handler struct {
	logger *slog.Logger
}

// NewHandler builds the router. Options configure locale negotiation.
func NewHandler(logger *slog.Logger, opts ...filters.LocaleOption) http.Handler {
	h := &handler{logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(filters.Locale(opts...))
	r.Use(h.logRequests)

	r.Get("/", h.page)
	r.Get("/api/format", h.format)
	r.Get("/badge", h.badge)

	return r
}

type pageData struct {
	Locale string
	Value  any
	Error  string
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	f := filters.FormatterFromContext(r.Context())
	data := pageData{Locale: f.Locale().String()}

	if raw := r.URL.Query().Get("value"); raw != "" {
		data.Value = requestValue(r, raw)
		if _, err := f.Parse(data.Value); err != nil {
			data.Error = err.Error()
		}
	}

	tmpl, err := pageTemplate.Clone()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	tmpl.Funcs(filters.FuncMap(f))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

type formatResponse struct {
	Value     any    `json:"value"`
	Formatted string `json:"formatted,omitempty"`
	Locale    string `json:"locale"`
	Error     string `json:"error,omitempty"`
}

func (h *handler) format(w http.ResponseWriter, r *http.Request) {
	f := filters.FormatterFromContext(r.Context())
	resp := formatResponse{Locale: f.Locale().String()}

	raw := r.URL.Query().Get("value")
	if raw == "" {
		resp.Error = ErrMissingValue.Error()
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	resp.Value = requestValue(r, raw)
	out, err := f.Format(resp.Value)
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	resp.Formatted = out
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) badge(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("value")
	if raw == "" {
		http.Error(w, ErrMissingValue.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := filters.Date(requestValue(r, raw)).Render(r.Context(), &buf); err != nil {
		if errors.Is(err, datefmt.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// requestValue returns raw, or its integer value when epoch=1 is set.
func requestValue(r *http.Request, raw string) any {
	if epoch, _ := strconv.ParseBool(r.URL.Query().Get("epoch")); epoch {
		if ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return ms
		}
	}
	return raw
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
