package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/tal3a/internal/auth"
	"github.com/mmynk/tal3a/internal/models"
)

type empty struct{}

func okHandler(seen *models.Principal) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if seen != nil {
			*seen = GetPrincipal(ctx)
		}
		return connect.NewResponse(&empty{}), nil
	}
}

func newRequest(token string) *connect.Request[empty] {
	req := connect.NewRequest(&empty{})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	token, err := jwtManager.Generate("alice", "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	interceptor := RequireAuth(jwtManager)

	var seen models.Principal
	if _, err := interceptor(okHandler(&seen))(context.Background(), newRequest(token)); err != nil {
		t.Fatalf("expected valid token to pass, got %v", err)
	}
	if seen != "alice" {
		t.Errorf("principal: expected 'alice', got '%s'", seen)
	}

	for name, req := range map[string]*connect.Request[empty]{
		"missing": newRequest(""),
		"garbage": newRequest("garbage"),
	} {
		_, err := interceptor(okHandler(nil))(context.Background(), req)
		if connect.CodeOf(err) != connect.CodeUnauthenticated {
			t.Errorf("%s: expected Unauthenticated, got %v", name, err)
		}
	}

	basic := connect.NewRequest(&empty{})
	basic.Header().Set("Authorization", "Basic abc")
	_, err = interceptor(okHandler(nil))(context.Background(), basic)
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("basic: expected Unauthenticated, got %v", err)
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	token, _ := jwtManager.Generate("bob", "")
	interceptor := OptionalAuth(jwtManager)

	var seen models.Principal
	if _, err := interceptor(okHandler(&seen))(context.Background(), newRequest("")); err != nil {
		t.Fatalf("expected anonymous call to pass, got %v", err)
	}
	if seen != "" {
		t.Errorf("expected no principal, got '%s'", seen)
	}

	if _, err := interceptor(okHandler(&seen))(context.Background(), newRequest(token)); err != nil {
		t.Fatalf("expected authenticated call to pass, got %v", err)
	}
	if seen != "bob" {
		t.Errorf("expected 'bob', got '%s'", seen)
	}
}

func TestRequestID(t *testing.T) {
	interceptor := RequestIDInterceptor()

	var inner string
	handler := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		inner = GetRequestID(ctx)
		return connect.NewResponse(&empty{}), nil
	}

	req := newRequest("")
	req.Header().Set(RequestIDHeader, "req-123")
	resp, err := interceptor(handler)(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner != "req-123" || resp.Header().Get(RequestIDHeader) != "req-123" {
		t.Errorf("expected propagated id 'req-123', got '%s' / '%s'", inner, resp.Header().Get(RequestIDHeader))
	}

	resp, err = interceptor(handler)(context.Background(), newRequest(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inner) != 36 || resp.Header().Get(RequestIDHeader) != inner {
		t.Errorf("expected generated UUID, got '%s'", inner)
	}

	failing := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	}
	_, err = interceptor(failing)(context.Background(), req)
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) || connectErr.Meta().Get(RequestIDHeader) != "req-123" {
		t.Errorf("expected request id in error metadata, got %v", err)
	}
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	token, _ := jwtManager.Generate("carol", "")

	chain := RequestIDInterceptor()(LoggingInterceptor(logger)(RequireAuth(jwtManager)(okHandler(nil))))
	if _, err := chain(context.Background(), newRequest(token)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "RPC ok") || !strings.Contains(out, "principal=carol") || !strings.Contains(out, "request_id=") {
		t.Errorf("unexpected log output %q", out)
	}

	buf.Reset()
	if _, err := chain(context.Background(), newRequest("")); err == nil {
		t.Fatal("expected unauthenticated error")
	}
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "code=unauthenticated") {
		t.Errorf("expected warning for rejected call, got %q", buf.String())
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	handler := metrics.Interceptor()(okHandler(nil))
	for range 3 {
		if _, err := handler(context.Background(), newRequest("")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	failing := metrics.Interceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))
	})
	_, _ = failing(context.Background(), newRequest(""))

	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("", "ok")); got != 3 {
		t.Errorf("ok count: expected 3, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.requests.WithLabelValues("", "invalid_argument")); got != 1 {
		t.Errorf("invalid_argument count: expected 1, got %v", got)
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("expected burst of 2 to pass")
	}
	if rl.Allow("a") {
		t.Error("expected third call in the same instant to be limited")
	}
	if !rl.Allow("b") {
		t.Error("expected another caller to have its own bucket")
	}

	now = now.Add(time.Second)
	if !rl.Allow("a") {
		t.Error("expected a token to refill after one second")
	}

	now = now.Add(time.Hour)
	if pruned := rl.Prune(time.Minute); pruned != 2 {
		t.Errorf("expected 2 idle callers pruned, got %d", pruned)
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := rl.Interceptor()(okHandler(nil))
	ctx := WithPrincipal(context.Background(), "alice")

	if _, err := handler(ctx, newRequest("")); err != nil {
		t.Fatalf("expected first call to pass, got %v", err)
	}
	_, err := handler(ctx, newRequest(""))
	if connect.CodeOf(err) != connect.CodeResourceExhausted {
		t.Errorf("expected ResourceExhausted, got %v", err)
	}
	if _, err := handler(WithPrincipal(context.Background(), "bob"), newRequest("")); err != nil {
		t.Errorf("expected other principal to pass, got %v", err)
	}
}

func TestPeerKeyIgnoresPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"203.0.113.7:51234", "peer:203.0.113.7"},
		{"203.0.113.7:51235", "peer:203.0.113.7"},
		{"[2001:db8::1]:443", "peer:2001:db8::1"},
		{"203.0.113.7", "peer:203.0.113.7"},
		{"", "peer:"},
	}
	for _, tt := range tests {
		if got := peerKey(tt.addr); got != tt.want {
			t.Errorf("peerKey(%q): expected %q, got %q", tt.addr, tt.want, got)
		}
	}

	rl := NewRateLimiter(1, 1)
	if !rl.Allow(peerKey("203.0.113.7:51234")) {
		t.Fatal("expected first connection to pass")
	}
	if rl.Allow(peerKey("203.0.113.7:51235")) {
		t.Error("expected a new source port to share the host's bucket")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	for range 100 {
		if !rl.Allow("a") {
			t.Fatal("expected unlimited calls when disabled")
		}
	}
}
