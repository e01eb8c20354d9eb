package cliio

import (
	"bytes"
	"os"
	"testing"
)

func TestWithOutWithErrChaining(t *testing.T) {
	var out, errw bytes.Buffer
	m := New().WithOut(&out).WithErr(&errw)
	if m.Out() != &out {
		t.Error("WithOut did not set Out")
	}
	if m.Err() != &errw {
		t.Error("WithErr did not set Err")
	}
}

func TestSupportsColorRespectsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	m := New().ForceColor()
	if m.SupportsColor() {
		t.Error("NO_COLOR must win even over ForceColor")
	}
}

func TestSupportsColorRespectsForceColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	var out bytes.Buffer
	m := New().WithOut(&out)
	if !m.SupportsColor() {
		t.Error("FORCE_COLOR env var should force color on")
	}
}

func TestForceColorAndNoColorOverrides(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	var out bytes.Buffer
	m := New().WithOut(&out)

	m.ForceColor()
	if !m.SupportsColor() {
		t.Error("ForceColor() should force color on")
	}

	m.NoColor()
	if m.SupportsColor() {
		t.Error("NoColor() should force color off")
	}
}

func TestPaintersNoOpWithoutColor(t *testing.T) {
	var out bytes.Buffer
	m := New().WithOut(&out).NoColor()
	for _, got := range []string{m.Bold("x"), m.Faint("x"), m.Underline("x"), m.Red("x")} {
		if got != "x" {
			t.Errorf("painter with color disabled = %q, want %q", got, "x")
		}
	}
}

func TestIsTTYFalseForNonFileWriter(t *testing.T) {
	var out bytes.Buffer
	m := New().WithOut(&out)
	if m.IsTTY() {
		t.Error("bytes.Buffer is never a TTY")
	}
}

func TestWidthFallsBackTo80ForNonFileWriter(t *testing.T) {
	var out bytes.Buffer
	m := New().WithOut(&out)
	if w := m.Width(); w != 80 {
		t.Errorf("Width() = %d, want 80 fallback", w)
	}
}

func TestWidthFallsBackForNonTTYFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "cliio")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	m := New().WithOut(f)
	if m.IsTTY() {
		t.Error("a regular file is never a TTY")
	}
	if w := m.Width(); w != 80 {
		t.Errorf("Width() = %d, want 80 fallback", w)
	}
}

func TestLevelStrings(t *testing.T) {
	cases := map[Level]string{
		Debug: "debug",
		Info:  "info",
		Warn:  "warn",
		Error: "error",
	}
	for lvl, want := range cases {
		if got := lvl.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", lvl, got, want)
		}
	}
}

func TestLoggerLogfWritesToErr(t *testing.T) {
	var errw bytes.Buffer
	m := New().WithErr(&errw).NoColor()
	lg := NewLogger(m)
	lg.Logf(Warn, "disk at %d%%", 90)

	got := errw.String()
	if !bytes.Contains([]byte(got), []byte("warn")) {
		t.Errorf("Logf output %q missing level tag", got)
	}
	if !bytes.Contains([]byte(got), []byte("disk at 90%")) {
		t.Errorf("Logf output %q missing formatted message", got)
	}
}
