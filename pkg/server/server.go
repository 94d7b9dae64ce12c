package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

// Config configures the Glint server.
type Config struct {
	// NewApp constructs the application for one session.
	NewApp func() App

	// Logger for server events. Defaults to slog.Default.
	Logger *slog.Logger

	// Registry is the Prometheus registry metrics are registered with.
	// Defaults to prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Tracer, when set, wraps every event dispatch in a span.
	Tracer trace.Tracer

	// CheckOrigin overrides the websocket origin check.
	CheckOrigin func(r *http.Request) bool
}

// Server serves the initial page, the websocket event stream, and metrics.
type Server struct {
	config   Config
	logger   *slog.Logger
	metrics  *Metrics
	registry prometheus.Registerer
	upgrader websocket.Upgrader
}

// New creates a Server from config. config.NewApp is required.
func New(config Config) *Server {
	if config.NewApp == nil {
		panic("server: Config.NewApp is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "server")

	registry := config.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	return &Server{
		config:   config,
		logger:   logger,
		metrics:  NewMetrics(registry),
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     config.CheckOrigin,
		},
	}
}

// Metrics returns the server's Prometheus instruments.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Handler returns the HTTP handler: GET / serves the rendered page,
// GET /ws upgrades to the event stream, GET /metrics serves Prometheus
// metrics when the registry is also a Gatherer.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebsocket)
	if gatherer, ok := s.registry.(prometheus.Gatherer); ok {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// handleIndex mounts a throwaway session and writes the full page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	session := NewSession(s.config.NewApp(), s.logger, s.metrics, s.config.Tracer)

	html, err := session.RenderHTML()
	if err != nil {
		s.logger.Error("initial render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><title>glint</title></head>\n%s\n</html>\n", html)
}

// handleWebsocket runs one session for the lifetime of the connection.
// Each text frame received is an event name; each event is answered with
// the re-rendered tree.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := NewSession(s.config.NewApp(), s.logger, s.metrics, s.config.Tracer)
	s.metrics.SessionsActive.Inc()
	defer s.metrics.SessionsActive.Dec()
	session.logger.Info("session connected", "remote", r.RemoteAddr)

	// Initial frame so the client starts from the mounted tree.
	html, err := session.RenderHTML()
	if err != nil {
		session.logger.Error("initial render failed", "error", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
		return
	}

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			session.logger.Info("session disconnected", "error", err)
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		html, err := session.Dispatch(r.Context(), string(msg))
		if err != nil {
			session.logger.Error("event dispatch failed", "event", string(msg), "error", err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(html)); err != nil {
			return
		}
	}
}
