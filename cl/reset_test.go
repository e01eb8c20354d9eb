package cl

import (
	"reflect"
	"testing"

	"github.com/dzonerzy/cl/parsers"
)

func TestResetAllOptionOccurrencesIsIdempotent(t *testing.T) {
	ResetCommandLineParser()
	n, _ := NewOpt("n", parsers.Int(), Init(5))
	n.Set(42)

	ResetAllOptionOccurrences()
	first := n.Get()
	ResetAllOptionOccurrences()
	second := n.Get()

	if first != 5 || second != 5 {
		t.Errorf("got first=%d second=%d, want both 5", first, second)
	}
}

func TestResetAllOptionOccurrencesClearsNumOccurrences(t *testing.T) {
	ResetCommandLineParser()
	v, _ := NewOpt("v", parsers.Bool())
	if _, err := NewDispatcher().Dispatch([]string{"-v"}, &Config{}); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if v.NumOccurrences() != 1 {
		t.Fatalf("NumOccurrences = %d, want 1", v.NumOccurrences())
	}
	ResetAllOptionOccurrences()
	if v.NumOccurrences() != 0 {
		t.Errorf("NumOccurrences after reset = %d, want 0", v.NumOccurrences())
	}
}

func TestResetCommandLineParserForgetsSubCommands(t *testing.T) {
	ResetCommandLineParser()
	NewSubCommand("build", "")
	if _, ok := LookupSubCommand("build"); !ok {
		t.Fatal("build should be registered")
	}
	ResetCommandLineParser()
	if _, ok := LookupSubCommand("build"); ok {
		t.Error("ResetCommandLineParser should forget previously registered subcommands")
	}
}

func TestRoundTripParsingIsIdempotent(t *testing.T) {
	ResetCommandLineParser()
	n, _ := NewOpt("n", parsers.Int())
	I, _ := NewList("I", parsers.String(), CommaSeparatedOpt[string]())

	argv := []string{"-n", "7", "-I", "a,b", "-I", "c"}

	if _, err := NewDispatcher().Dispatch(argv, &Config{}); err != nil {
		t.Fatalf("first Dispatch: %v", err)
	}
	firstN, firstI := n.Get(), append([]string{}, I.Get()...)

	if _, err := NewDispatcher().Dispatch(argv, &Config{}); err != nil {
		t.Fatalf("second Dispatch: %v", err)
	}
	secondN, secondI := n.Get(), I.Get()

	if firstN != secondN {
		t.Errorf("n changed across identical parses: %d vs %d", firstN, secondN)
	}
	if !reflect.DeepEqual(firstI, secondI) {
		t.Errorf("I changed across identical parses: %v vs %v", firstI, secondI)
	}
}
