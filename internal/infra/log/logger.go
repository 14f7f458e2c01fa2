package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"todolist/config"
	"todolist/internal/errors"

	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	var attrs []slog.Attr
	if name := params.Config.Env.ServiceName; name != "" {
		attrs = append(attrs, slog.String("service", name))
	}

	return NewWithWriter(os.Stdout, params.Config.Env.Log, attrs...)
}

// NewWithWriter builds the logger on top of w. Pretty selects the text handler,
// otherwise records are JSON. Every record carries the service name when set.
func NewWithWriter(w io.Writer, cfg config.Log, attrs ...slog.Attr) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler), nil
}

// parseLogLevel converts string log level to slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
