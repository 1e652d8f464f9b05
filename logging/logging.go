// Package logging provides contract.Logger sinks backed by go-kit and log/slog.
//
// Every sink here is safe for concurrent use.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/lmittmann/tint"

	"github.com/next-trace/scg-errhandler/config"
	"github.com/next-trace/scg-errhandler/contract"
)

// Nop discards every line.
var Nop contract.Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Errorf(string, ...any) {}

// Func adapts a plain function to contract.Logger. The function must be safe
// for concurrent use.
type Func func(format string, args ...any)

func (f Func) Errorf(format string, args ...any) { f(format, args...) }

// GoKit emits each line at error level on l.
func GoKit(l kitlog.Logger) contract.Logger {
	return goKitLogger{logger: l}
}

type goKitLogger struct {
	logger kitlog.Logger
}

func (g goKitLogger) Errorf(format string, args ...any) {
	_ = level.Error(g.logger).Log("msg", fmt.Sprintf(format, args...))
}

// Slog emits each line at error level on l.
func Slog(l *slog.Logger) contract.Logger {
	return slogLogger{logger: l}
}

type slogLogger struct {
	logger *slog.Logger
}

func (s slogLogger) Errorf(format string, args ...any) {
	s.logger.Error(fmt.Sprintf(format, args...))
}

// NewLogger builds a go-kit logger writing cfg.LogFormat lines to w.
func NewLogger(cfg config.Config, w io.Writer) kitlog.Logger {
	writer := kitlog.NewSyncWriter(w)

	var logger kitlog.Logger
	if cfg.LogFormat == config.LogFormatJSON {
		logger = kitlog.NewJSONLogger(writer)
	} else {
		logger = kitlog.NewLogfmtLogger(writer)
	}

	// use UTC timestamps and skip the sink adapter frames.
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.Caller(6))

	// Must put the level filter last for efficiency.
	return level.NewFilter(logger, kitLevel(cfg.LogLevel))
}

// NewSlog builds a slog logger: JSON when cfg.LogFormat is json, coloured tint
// output in development and plain text otherwise.
func NewSlog(cfg config.Config, w io.Writer) *slog.Logger {
	lvl := slogLevel(cfg.LogLevel)

	switch {
	case cfg.LogFormat == config.LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	case cfg.Development():
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
}

func kitLevel(l string) level.Option {
	switch l {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

func slogLevel(l string) slog.Level {
	switch l {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
