// Package cliio centralizes the terminal capabilities help.go and the
// dispatcher's diagnostics need: TTY detection, width for wrapping -help
// output, and ANSI colorization, backed by golang.org/x/term and
// github.com/fatih/color instead of hand-rolled per-OS ioctls.
package cliio

import (
	"fmt"
	stdio "io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Manager centralizes IO and terminal capabilities for one program run.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// Out returns the configured standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

func fdOf(w stdio.Writer) (uintptr, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return f.Fd(), true
}

// IsTTY reports whether the configured output is connected to a terminal.
func (m *Manager) IsTTY() bool {
	fd, ok := fdOf(m.out)
	return ok && term.IsTerminal(int(fd))
}

// Width returns the output terminal's column count, or 80 if it cannot be
// determined (piped output, non-file writer, ioctl failure).
func (m *Manager) Width() int {
	fd, ok := fdOf(m.out)
	if !ok {
		return 80
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// SupportsColor reports whether output should be colorized, honoring
// NO_COLOR/FORCE_COLOR and the manager's own overrides ahead of fatih/color's
// own isatty-based default.
func (m *Manager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return !color.NoColor && m.IsTTY()
}

func (m *Manager) paint(attr color.Attribute, s string) string {
	if !m.SupportsColor() {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string { return m.paint(color.Bold, s) }

// Faint returns s dimmed when color is supported; otherwise s unchanged.
func (m *Manager) Faint(s string) string { return m.paint(color.Faint, s) }

// Underline returns s underlined when color is supported; otherwise s unchanged.
func (m *Manager) Underline(s string) string { return m.paint(color.Underline, s) }

// Red returns s in red when color is supported; otherwise s unchanged. Used
// for diagnostics rendered in a terminal.
func (m *Manager) Red(s string) string { return m.paint(color.FgRed, s) }

// Level tags a Logger line.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Logger writes level-tagged lines to a Manager's error stream, colorized
// when that stream is a terminal. It backs the dispatcher's opt-in parse
// trace; parse-error diagnostics are written by cl's fail() directly.
type Logger struct {
	m *Manager
}

// NewLogger builds a Logger writing through m.
func NewLogger(m *Manager) *Logger { return &Logger{m: m} }

func (lg *Logger) attr(lvl Level) color.Attribute {
	switch lvl {
	case Debug:
		return color.FgCyan
	case Warn:
		return color.FgYellow
	case Error:
		return color.FgRed
	default:
		return color.FgGreen
	}
}

// Logf writes one tagged, colorized line.
func (lg *Logger) Logf(lvl Level, format string, args ...any) {
	tag := lg.m.paint(lg.attr(lvl), lvl.String())
	fmt.Fprintf(lg.m.Err(), "[%s] %s\n", tag, fmt.Sprintf(format, args...))
}
