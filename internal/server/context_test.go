package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/teemow/twitter-mcp/internal/instrumentation"
	"github.com/teemow/twitter-mcp/internal/twitter"
)

func newTestTwitterClient(t *testing.T) *twitter.Client {
	t.Helper()
	client, err := twitter.NewClient(twitter.Credentials{
		ConsumerKey:       "ck",
		ConsumerSecret:    "cs",
		AccessToken:       "tok",
		AccessTokenSecret: "ts",
	})
	if err != nil {
		t.Fatalf("failed to create twitter client: %v", err)
	}
	return client
}

func TestNewServerContext(t *testing.T) {
	sc, err := NewServerContext(context.Background(), newTestTwitterClient(t))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.TwitterClient() == nil {
		t.Error("TwitterClient() should not be nil")
	}
	if sc.Context() == nil {
		t.Error("Context() should not be nil")
	}
	if sc.IsShutdown() {
		t.Error("new server context should not be shutdown")
	}
}

func TestNewServerContext_NilClient(t *testing.T) {
	_, err := NewServerContext(context.Background(), nil)
	if err == nil {
		t.Error("expected error for nil twitter client")
	}
}

func TestServerContext_SetTwitterClient(t *testing.T) {
	sc, err := NewServerContext(context.Background(), newTestTwitterClient(t))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	replacement := newTestTwitterClient(t)
	sc.SetTwitterClient(replacement)

	if sc.TwitterClient() != replacement {
		t.Error("TwitterClient() should return the replacement client")
	}
}

func TestServerContext_MetricsAndAuditLogger(t *testing.T) {
	sc, err := NewServerContext(context.Background(), newTestTwitterClient(t))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil before SetMetrics")
	}
	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() should be nil before SetAuditLogger")
	}

	metrics := &instrumentation.Metrics{}
	sc.SetMetrics(metrics)
	if sc.Metrics() != metrics {
		t.Error("Metrics() should return the configured recorder")
	}

	al := instrumentation.NewAuditLogger(slog.Default())
	sc.SetAuditLogger(al)
	if sc.AuditLogger() != al {
		t.Error("AuditLogger() should return the configured logger")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc, err := NewServerContext(context.Background(), newTestTwitterClient(t))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
	if !sc.IsShutdown() {
		t.Error("IsShutdown() should be true after Shutdown()")
	}

	// Context should be cancelled
	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown()")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
