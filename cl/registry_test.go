package cl

import (
	"testing"

	"github.com/dzonerzy/cl/parsers"
)

func TestDuplicateNameSameSubCommandIsConfigurationError(t *testing.T) {
	ResetCommandLineParser()
	if _, err := NewOpt("v", parsers.Bool()); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := NewOpt("v", parsers.Bool())
	if err == nil {
		t.Fatal("expected an error registering a duplicate name")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != Configuration {
		t.Errorf("got %v, want a Configuration ParseError", err)
	}
}

func TestSameNameAcrossDifferentSubCommandsIsOK(t *testing.T) {
	ResetCommandLineParser()
	build := NewSubCommand("build", "compile")
	test := NewSubCommand("test", "run tests")

	if _, err := NewOpt("v", parsers.Bool(), Sub[bool](build)); err != nil {
		t.Fatalf("build -v: %v", err)
	}
	if _, err := NewOpt("v", parsers.Bool(), Sub[bool](test)); err != nil {
		t.Fatalf("test -v: %v", err)
	}
}

func TestGroupingRequiresSingleCharName(t *testing.T) {
	ResetCommandLineParser()
	_, err := NewOpt("verbose", parsers.Bool(), GroupingOpt[bool]())
	if err == nil {
		t.Fatal("expected an error for a multi-character Grouping option")
	}
}

func TestPositionalMustNotCarryArgName(t *testing.T) {
	ResetCommandLineParser()
	_, err := NewOpt("file", parsers.String(), PositionalOpt[string]())
	if err == nil {
		t.Fatal("expected an error for a named positional option")
	}
}
