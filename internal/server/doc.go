// Package server provides the MCP server context, health probes, and the
// dedicated metrics server for the twitter-mcp application.
//
// # Key Components
//
// ServerContext carries the shared Twitter API client plus optional
// instrumentation hooks (metrics recorder, audit logger) and coordinates
// graceful shutdown via a cancellable context.
//
// HealthChecker exposes Kubernetes-style probe endpoints:
//   - /healthz: liveness, a simple process-is-running check
//   - /readyz: readiness, false while starting up or shutting down
//
// MetricsServer serves Prometheus metrics on a dedicated port, isolated
// from MCP traffic so operational metrics are never exposed on the
// application endpoint.
//
// HTTPServer serves the streamable-http MCP transport on /mcp alongside
// the health endpoints, recording request metrics when instrumentation
// is configured.
package server
