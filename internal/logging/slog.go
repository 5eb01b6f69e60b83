package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Redacted replaces the value of any credential key passed to a Logger.
const Redacted = "[REDACTED]"

var sensitiveKeys = map[string]struct{}{
	"password":         {},
	"confirm_password": {},
	"access_token":     {},
	"refresh_token":    {},
	"token":            {},
	"authorization":    {},
}

// redact returns args with credential values masked. Keys are matched
// case-insensitively. A slog.Attr counts as a single arg, as in slog.
// args itself is never modified.
func redact(args []any) []any {
	var out []any
	mask := func(i int, v any) {
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i] = v
	}
	for i := 0; i < len(args); i++ {
		if a, ok := args[i].(slog.Attr); ok {
			if isSensitive(a.Key) {
				mask(i, slog.String(a.Key, Redacted))
			}
			continue
		}
		key, ok := args[i].(string)
		if !ok || i+1 >= len(args) {
			continue
		}
		if isSensitive(key) {
			mask(i+1, Redacted)
		}
		i++
	}
	if out == nil {
		return args
	}
	return out
}

func isSensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, redact(args)...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(redact(args)...)}
}
