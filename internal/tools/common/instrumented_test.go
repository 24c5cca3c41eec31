package common

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teemow/twitter-mcp/internal/instrumentation"
	"github.com/teemow/twitter-mcp/internal/server"
	"github.com/teemow/twitter-mcp/internal/twitter"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
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

	sc, err := server.NewServerContext(context.Background(), client)
	if err != nil {
		t.Fatalf("failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func newCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestInstrumentedToolHandler_PassthroughWithoutInstrumentation(t *testing.T) {
	sc := newTestServerContext(t)

	called := false
	wrapped := InstrumentedToolHandler("test_tool", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			called = true
			return mcp.NewToolResultText("ok"), nil
		})

	result, err := wrapped(context.Background(), newCallToolRequest("test_tool", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("handler was not called")
	}
	if result == nil || result.IsError {
		t.Error("expected successful result")
	}
}

func TestInstrumentedToolHandler_RecordsWithAuditLogger(t *testing.T) {
	sc := newTestServerContext(t)
	sc.SetAuditLogger(instrumentation.NewAuditLogger(slog.Default()))

	wrapped := InstrumentedToolHandler("test_tool", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("ok"), nil
		})

	result, err := wrapped(context.Background(), newCallToolRequest("test_tool", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
}

func TestInstrumentedToolHandler_HandlerError(t *testing.T) {
	sc := newTestServerContext(t)
	sc.SetAuditLogger(instrumentation.NewAuditLogger(slog.Default()))

	wantErr := errors.New("handler failed")
	wrapped := InstrumentedToolHandler("test_tool", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return nil, wantErr
		})

	_, err := wrapped(context.Background(), newCallToolRequest("test_tool", nil))
	if !errors.Is(err, wantErr) {
		t.Errorf("expected handler error to pass through, got %v", err)
	}
}

func TestInstrumentedToolHandler_ToolResultError(t *testing.T) {
	sc := newTestServerContext(t)
	sc.SetAuditLogger(instrumentation.NewAuditLogger(slog.Default()))

	wrapped := InstrumentedToolHandler("test_tool", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultError("validation failed"), nil
		})

	result, err := wrapped(context.Background(), newCallToolRequest("test_tool", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result to pass through")
	}
}

func TestInstrumentedToolHandlerWithService(t *testing.T) {
	sc := newTestServerContext(t)
	sc.SetAuditLogger(instrumentation.NewAuditLogger(slog.Default()))

	wrapped := InstrumentedToolHandlerWithService("post_tweet", "twitter", "create_tweet", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("ok"), nil
		})

	result, err := wrapped(context.Background(), newCallToolRequest("post_tweet", map[string]interface{}{
		"text": "hello",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || result.IsError {
		t.Error("expected successful result")
	}
}
