package server

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/render"
)

// App is the application contract: it mounts a root node into a fresh
// document and handles named client events. One App instance serves one
// session; the session model is single-threaded per client.
type App interface {
	// Mount builds the root component(s), attaches them under doc's root,
	// and returns the primary root node.
	Mount(doc *dom.Document) *dom.Node

	// HandleEvent dispatches a named client event to the mounted
	// components. State changes re-render in place; the session serializes
	// the tree afterwards.
	HandleEvent(name string)
}

var nextSessionID atomic.Uint64

// Session is one client's private document plus its mounted application.
type Session struct {
	id       string
	doc      *dom.Document
	app      App
	renderer *render.Renderer
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
}

// NewSession mounts app into a fresh document.
func NewSession(app App, logger *slog.Logger, metrics *Metrics, tracer trace.Tracer) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := strconv.FormatUint(nextSessionID.Add(1), 10)
	s := &Session{
		id:       id,
		doc:      dom.NewDocument(),
		app:      app,
		renderer: render.New(render.Config{}),
		logger:   logger.With("session", id),
		metrics:  metrics,
		tracer:   tracer,
	}

	app.Mount(s.doc)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Document returns the session's live document.
func (s *Session) Document() *dom.Document { return s.doc }

// RenderHTML serializes the current document tree.
func (s *Session) RenderHTML() (string, error) {
	html, err := s.renderer.ToString(s.doc.Root())
	if err != nil {
		return "", fmt.Errorf("render session %s: %w", s.id, err)
	}
	if s.metrics != nil {
		s.metrics.RendersTotal.Inc()
	}
	return html, nil
}

// Dispatch handles one client event and returns the fresh HTML frame.
func (s *Session) Dispatch(ctx context.Context, event string) (string, error) {
	if s.tracer != nil {
		_, span := s.tracer.Start(ctx, "glint.event",
			trace.WithAttributes(
				attribute.String("glint.event", event),
				attribute.String("glint.session", s.id),
			))
		defer span.End()

		html, err := s.dispatch(event)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		return html, err
	}
	return s.dispatch(event)
}

func (s *Session) dispatch(event string) (string, error) {
	if s.metrics != nil {
		s.metrics.EventsTotal.Inc()
	}
	s.app.HandleEvent(event)
	return s.RenderHTML()
}
