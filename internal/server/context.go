package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/teemow/twitter-mcp/internal/instrumentation"
	"github.com/teemow/twitter-mcp/internal/twitter"
)

// ServerContext holds the shared state for the MCP server: the Twitter API
// client plus optional instrumentation hooks.
type ServerContext struct {
	ctx           context.Context
	cancel        context.CancelFunc
	twitterClient *twitter.Client
	metrics       *instrumentation.Metrics
	auditLogger   *instrumentation.AuditLogger
	mu            sync.RWMutex
	shutdown      bool
}

// NewServerContext creates a new server context. The Twitter client is
// required; every registered tool depends on it.
func NewServerContext(ctx context.Context, client *twitter.Client) (*ServerContext, error) {
	if client == nil {
		return nil, fmt.Errorf("twitter client is required")
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		twitterClient: client,
		shutdown:      false,
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// TwitterClient returns the Twitter API client.
func (sc *ServerContext) TwitterClient() *twitter.Client {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.twitterClient
}

// SetTwitterClient replaces the Twitter API client. Used by tests.
func (sc *ServerContext) SetTwitterClient(client *twitter.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.twitterClient = client
}

// SetMetrics sets the metrics recorder for instrumentation.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if instrumentation is not
// configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool invocation records.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = al
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
