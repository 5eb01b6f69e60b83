package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported backends.
const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
	BackendZap     = "zap"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls which backend New builds and how it writes.
type Options struct {
	// Backend is one of slog, zerolog, zap. Empty means slog.
	Backend string
	// Level is debug, info, warn or error. Empty means info.
	Level string
	// Format is text or json. Empty means text.
	Format string
	// Output defaults to os.Stderr so logs stay out of the REPL.
	Output io.Writer
}

// New builds a Logger for the given options.
func New(opts Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := strings.ToLower(strings.TrimSpace(opts.Level))
	if level == "" {
		level = "info"
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendSlog:
		return newSlog(out, level, format)
	case BackendZerolog:
		return newZerolog(out, level, format)
	case BackendZap:
		return newZap(out, level, format)
	default:
		return nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func newSlog(out io.Writer, level, format string) (Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	ho := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(out, ho)
	} else {
		h = slog.NewTextHandler(out, ho)
	}
	return NewSlogLogger(slog.New(h)), nil
}

func newZerolog(out io.Writer, level, format string) (Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if format == FormatText {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return NewZerologLogger(l), nil
}

func newZap(out io.Writer, level, format string) (Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if format == FormatJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(lvl))
	return NewZapLogger(zap.New(core)), nil
}
