// Package server exposes an assignment engine over HTTP.
//
// Routes:
//
//	POST /run      {"choice": "horizontal"} -> BatchResult JSON, X-Run-ID header
//	GET  /health   {"status": "ok"}
//	GET  /stats    runs served per resolved scaling mode
//	GET  /metrics  Prometheus exposition (when a gatherer is configured)
//
// All routes are wrapped with CORS and panic recovery middleware from
// gorilla/handlers.
package server
