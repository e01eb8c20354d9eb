package cl

import (
	"io"
	"reflect"
	"testing"

	"github.com/dzonerzy/cl/parsers"
)

func parseFor(t *testing.T, argv []string) error {
	t.Helper()
	var captured error
	cfg := &Config{
		Out:       io.Discard,
		Err:       io.Discard,
		ErrorSink: func(err error) { captured = err },
	}
	ParseCommandLineOptions(argv, cfg)
	return captured
}

// Scenario 1: a required scalar int and an optional bool.
func TestScenarioScalarAndBool(t *testing.T) {
	ResetCommandLineParser()
	n, _ := NewOpt("n", parsers.Int(), Occurrences[int](Required))
	v, _ := NewOpt("v", parsers.Bool())

	if err := parseFor(t, []string{"-n", "7", "-v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Get() != 7 || !v.Get() {
		t.Errorf("got n=%d v=%v, want n=7 v=true", n.Get(), v.Get())
	}
}

func TestScenarioScalarMissingRequired(t *testing.T) {
	ResetCommandLineParser()
	NewOpt("n", parsers.Int(), Occurrences[int](Required))
	NewOpt("v", parsers.Bool())

	err := parseFor(t, []string{"-v=false"})
	if err == nil {
		t.Fatal("expected a MissingRequired error for -n")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != MissingRequired {
		t.Errorf("got %v, want a MissingRequired ParseError", err)
	}
}

// Scenario 2: a comma-separated, repeatable list.
func TestScenarioCommaSeparatedList(t *testing.T) {
	ResetCommandLineParser()
	I, _ := NewList("I", parsers.String(), CommaSeparatedOpt[string]())

	if err := parseFor(t, []string{"-I", "a,b", "-I", "c"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := I.Get(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("I = %v, want [a b c]", got)
	}
}

// Scenario 3: a required positional plus a consume-after sink.
func TestScenarioPositionalAndConsumeAfter(t *testing.T) {
	ResetCommandLineParser()
	file, _ := NewOpt("", parsers.String(), PositionalOpt[string](), Desc[string]("file"), Occurrences[string](Required))
	rest, _ := NewList("", parsers.String(), Occurrences[string](ConsumeAfter))

	if err := parseFor(t, []string{"a.out", "--", "-x", "-y"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Get() != "a.out" {
		t.Errorf("file = %q, want a.out", file.Get())
	}
	if got := rest.Get(); !reflect.DeepEqual(got, []string{"-x", "-y"}) {
		t.Errorf("rest = %v, want [-x -y]", got)
	}
}

// Scenario 4: three Grouping bools, valid and invalid groupings.
func TestScenarioGrouping(t *testing.T) {
	ResetCommandLineParser()
	l, _ := NewOpt("l", parsers.Bool(), GroupingOpt[bool]())
	a, _ := NewOpt("a", parsers.Bool(), GroupingOpt[bool]())
	h, _ := NewOpt("h", parsers.Bool(), GroupingOpt[bool]())

	if err := parseFor(t, []string{"-lah"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Get() || !a.Get() || !h.Get() {
		t.Errorf("got l=%v a=%v h=%v, want all true", l.Get(), a.Get(), h.Get())
	}
}

func TestScenarioGroupingUnknownMember(t *testing.T) {
	ResetCommandLineParser()
	NewOpt("l", parsers.Bool(), GroupingOpt[bool]())

	err := parseFor(t, []string{"-lz"})
	if err == nil {
		t.Fatal("expected an UnknownOption error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnknownOption {
		t.Errorf("got %v, want an UnknownOption ParseError", err)
	}
}

// Scenario 5: prefix matching, plain and AlwaysPrefix.
func TestScenarioPrefix(t *testing.T) {
	ResetCommandLineParser()
	L, _ := NewOpt("L", parsers.String(), PrefixOpt[string]())

	if err := parseFor(t, []string{"-L/usr/lib"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if L.Get() != "/usr/lib" {
		t.Errorf("L = %q, want /usr/lib", L.Get())
	}
}

func TestScenarioAlwaysPrefixRejectsEquals(t *testing.T) {
	ResetCommandLineParser()
	NewOpt("L", parsers.String(), AlwaysPrefixOpt[string]())

	err := parseFor(t, []string{"-L=/usr/lib"})
	if err == nil {
		t.Fatal("expected an UnexpectedValue error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnexpectedValue {
		t.Errorf("got %v, want an UnexpectedValue ParseError", err)
	}
}

// Scenario 6: two subcommands, each with its own independently scoped -v.
func TestScenarioSubCommandScoping(t *testing.T) {
	ResetCommandLineParser()
	build := NewSubCommand("build", "compile")
	test := NewSubCommand("test", "run tests")
	buildV, _ := NewOpt("v", parsers.Bool(), Sub[bool](build))
	testV, _ := NewOpt("v", parsers.Bool(), Sub[bool](test))

	if err := parseFor(t, []string{"build", "-v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !buildV.Get() {
		t.Error("build's -v should be true")
	}
	if testV.Get() {
		t.Error("test's -v should be untouched")
	}
	if !build.Selected() || test.Selected() {
		t.Errorf("got build.Selected()=%v test.Selected()=%v, want true/false", build.Selected(), test.Selected())
	}
}

func TestScenarioSubCommandFlagNotVisibleAtTopLevel(t *testing.T) {
	ResetCommandLineParser()
	build := NewSubCommand("build", "compile")
	NewSubCommand("test", "run tests")
	NewOpt("v", parsers.Bool(), Sub[bool](build))

	err := parseFor(t, []string{"-v"})
	if err == nil {
		t.Fatal("expected an UnknownOption error for -v at TopLevel")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != UnknownOption {
		t.Errorf("got %v, want an UnknownOption ParseError", err)
	}
}

// Bool token equivalence: every accepted spelling parses to the same value.
func TestBoolTokenEquivalence(t *testing.T) {
	truthy := []string{"true", "TRUE", "1", "yes"}
	falsy := []string{"false", "FALSE", "0", "no"}

	for _, raw := range truthy {
		ResetCommandLineParser()
		v, _ := NewOpt("v", parsers.Bool())
		if err := parseFor(t, []string{"-v=" + raw}); err != nil {
			t.Fatalf("-v=%s: unexpected error: %v", raw, err)
		}
		if !v.Get() {
			t.Errorf("-v=%s parsed to false, want true", raw)
		}
	}
	for _, raw := range falsy {
		ResetCommandLineParser()
		v, _ := NewOpt("v", parsers.Bool())
		if err := parseFor(t, []string{"-v=" + raw}); err != nil {
			t.Fatalf("-v=%s: unexpected error: %v", raw, err)
		}
		if v.Get() {
			t.Errorf("-v=%s parsed to true, want false", raw)
		}
	}
}
