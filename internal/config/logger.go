package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/masq"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/ytget/yt-fetch/internal/model"
)

// DefaultLogLevel keeps a successful run silent
const DefaultLogLevel = "warn"

// Logger holds logger configuration
type Logger struct {
	Level   string
	JSON    bool
	NoColor bool
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       DefaultLogLevel,
			Destination: &c.Level,
			Sources:     cli.EnvVars("YT_FETCH_LOG_LEVEL"),
		},
		&cli.BoolFlag{
			Name:        "log-json",
			Usage:       "Output logs in JSON format",
			Destination: &c.JSON,
			Sources:     cli.EnvVars("YT_FETCH_LOG_JSON"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored console logs",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("YT_FETCH_NO_COLOR"),
		},
	}
}

// Configure returns a logger writing to stderr
func (c *Logger) Configure() (*slog.Logger, error) {
	return c.ConfigureWriter(os.Stderr)
}

// ConfigureWriter returns a logger writing to w
func (c *Logger) ConfigureWriter(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	// proxy URLs may carry credentials
	redact := masq.New(
		masq.WithType[model.Secret](),
		masq.WithFieldName("Proxy"),
	)

	var handler slog.Handler
	if c.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: redact,
		})
	} else {
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(!c.NoColor && isTerminal(w)),
			clog.WithReplaceAttr(redact),
		)
	}

	return slog.New(handler), nil
}

// ParseLevel converts a level name to slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", name)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
