// Package server provides a minimal live-session runtime for Glint
// components.
//
// Each connected client gets a Session: a private dom.Document with the
// application's root component mounted into it. The initial page is served
// as rendered HTML; after that, client events arrive over a websocket and
// each dispatched event is answered with a freshly rendered HTML frame of
// the whole tree.
//
// The server exposes Prometheus metrics (active sessions, dispatched
// events, renders) on /metrics and can wrap every event dispatch in an
// OpenTelemetry span when a tracer is configured.
package server
