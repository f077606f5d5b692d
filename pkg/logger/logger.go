package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type ctxKey int8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
)

// ctxAttrs lists the context values copied onto every record, in output order.
var ctxAttrs = []struct {
	key  ctxKey
	name string
}{
	{ctxKeyRequestID, "request_id"},
	{ctxKeyUserID, "user_id"},
}

// Handler enriches records with request-scoped values taken from the context.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	for _, a := range ctxAttrs {
		if v, ok := ctx.Value(a.key).(string); ok && v != "" {
			record.AddAttrs(slog.String(a.name, v))
		}
	}

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

// New builds the service logger writing to w and installs it as the default one.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: sLevel,
	}

	var base slog.Handler

	switch strings.ToLower(format) {
	case "", FormatJSON:
		base = slog.NewJSONHandler(w, opts)
	case FormatText:
		base = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	l := slog.New(&Handler{Handler: base}).With("service", "journal")

	slog.SetDefault(l)

	return l, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func RequestIDFromCtx(ctx context.Context) string {
	return stringFromCtx(ctx, ctxKeyRequestID)
}

func UserIDFromCtx(ctx context.Context) string {
	return stringFromCtx(ctx, ctxKeyUserID)
}

func stringFromCtx(ctx context.Context, key ctxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
