package cl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dzonerzy/cl/parsers"
)

func TestPrintHelpIncludesOverviewAndOptionNames(t *testing.T) {
	ResetCommandLineParser()
	NewOpt("n", parsers.Int(), Desc[int]("a count"), Occurrences[int](Required))
	NewOpt("v", parsers.Bool(), Desc[bool]("verbose output"))

	var out bytes.Buffer
	PrintHelp(&out, nil, TopLevelSubCommand(), helpOptions{overview: "myprog - does a thing"})

	got := out.String()
	if !strings.Contains(got, "myprog - does a thing") {
		t.Error("PrintHelp output missing overview text")
	}
	if !strings.Contains(got, "-n") || !strings.Contains(got, "-v") {
		t.Errorf("PrintHelp output missing option names: %q", got)
	}
	if !strings.Contains(got, "verbose output") {
		t.Errorf("PrintHelp output missing help text: %q", got)
	}
}

func TestPrintHelpHidesHiddenOptionsByDefault(t *testing.T) {
	ResetCommandLineParser()
	NewOpt("secret", parsers.Bool(), HiddenOpt[bool](Hidden))

	var out bytes.Buffer
	PrintHelp(&out, nil, TopLevelSubCommand(), helpOptions{})
	if strings.Contains(out.String(), "secret") {
		t.Error("hidden option should not appear without opts.hidden")
	}

	out.Reset()
	PrintHelp(&out, nil, TopLevelSubCommand(), helpOptions{hidden: true})
	if !strings.Contains(out.String(), "secret") {
		t.Error("hidden option should appear when opts.hidden is set")
	}
}

func TestPrintHelpNeverShowsReallyHidden(t *testing.T) {
	ResetCommandLineParser()
	NewOpt("internal", parsers.Bool(), HiddenOpt[bool](ReallyHidden))

	var out bytes.Buffer
	PrintHelp(&out, nil, TopLevelSubCommand(), helpOptions{hidden: true})
	if strings.Contains(out.String(), "internal") {
		t.Error("ReallyHidden option must never appear, even with opts.hidden")
	}
}

func TestPrintOptionsOnlyShowsChangedByDefault(t *testing.T) {
	ResetCommandLineParser()
	n, _ := NewOpt("n", parsers.Int(), Init(5))
	NewOpt("v", parsers.Bool())

	n.Set(42)

	var out bytes.Buffer
	PrintOptions(&out, TopLevelSubCommand(), false)
	got := out.String()
	if !strings.Contains(got, "-n = 42") {
		t.Errorf("PrintOptions should show changed -n: %q", got)
	}
	if strings.Contains(got, "-v") {
		t.Errorf("PrintOptions should hide unchanged -v: %q", got)
	}

	out.Reset()
	PrintOptions(&out, TopLevelSubCommand(), true)
	if !strings.Contains(out.String(), "-v") {
		t.Error("PrintOptions with all=true should show every option")
	}
}
