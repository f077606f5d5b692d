package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/journal/pkg/logger"
)

// RequestIDRoundTripper forwards the request id of the incoming call and logs outgoing requests.
type RequestIDRoundTripper struct {
	Transport http.RoundTripper
}

func NewRequestIDRoundTripper(transport http.RoundTripper) *RequestIDRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &RequestIDRoundTripper{Transport: transport}
}

func (t *RequestIDRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if reqID := logger.RequestIDFromCtx(ctx); reqID != "" {
		r = r.Clone(ctx)
		r.Header.Set("X-Request-Id", reqID)
	}

	start := time.Now()

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		slog.WarnContext(ctx, "outgoing request failed", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "error", err)
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "outgoing request",
		"request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	return resp, nil
}
