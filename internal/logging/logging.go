// Package logging wires log/slog for procompose binaries and packages.
//
// Packages never configure handlers themselves. They take a component logger
// from New once, when the long-lived value is built, and prefer a logger
// carried by the context (see core.WithLogger) at call time. Component names
// are short lowercase package names: "compose", "registry", or the binary
// name for commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ComponentKey is the attribute New attaches to every component logger.
const ComponentKey = "component"

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the default handler. The zero value logs text at info
// level to stderr.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// Handler builds the slog handler described by c.
func (c Config) Handler() (slog.Handler, error) {
	w := c.Output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(c.Level)}

	switch strings.ToLower(c.Format) {
	case "", FormatText:
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", c.Format)
	}
}

// Setup installs the handler described by c as the slog default.
func Setup(c Config) error {
	h, err := c.Handler()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// New returns the default logger tagged with component. The handler is
// captured at call time, so a later Setup does not affect loggers already
// handed out.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String(ComponentKey, component))
}

// ParseLevel accepts slog level names ("debug", "warn", "error+2", ...) in
// any case. Empty or unknown values map to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
