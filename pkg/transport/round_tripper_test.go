package transport_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/journal/pkg/logger"
	"github.com/samandr77/microservices/journal/pkg/transport"
)

func TestRequestIDRoundTripper(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", r.Header.Get("X-Request-Id"))
	}))
	t.Cleanup(server.Close)

	client := &http.Client{Transport: transport.NewRequestIDRoundTripper(nil)}

	for _, tt := range []struct {
		name  string
		ctx   context.Context
		reqID string
	}{
		{name: "forwarded", ctx: logger.WithRequestID(context.Background(), "req-42"), reqID: "req-42"},
		{name: "absent", ctx: context.Background(), reqID: ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequestWithContext(tt.ctx, http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())

			require.Equal(t, tt.reqID, resp.Header.Get("X-Echo-Request-Id"))
			require.Empty(t, req.Header.Get("X-Request-Id"))
		})
	}
}

func TestRequestIDRoundTripper_Error(t *testing.T) {
	t.Parallel()

	client := &http.Client{Transport: transport.NewRequestIDRoundTripper(nil)}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://127.0.0.1:1", nil)
	require.NoError(t, err)

	_, err = client.Do(req) //nolint:bodyclose
	require.Error(t, err)
}
