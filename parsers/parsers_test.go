package parsers

import "testing"

func TestIntParsesBases(t *testing.T) {
	p := Int()
	cases := map[string]int{"7": 7, "0xFF": 255, "010": 8, "-3": -3}
	for raw, want := range cases {
		got, err := p.Parse("n", raw)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", raw, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %d, want %d", raw, got, want)
		}
	}
	if _, err := p.Parse("n", "abc"); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestBoolAcceptedTokens(t *testing.T) {
	p := Bool()
	truthy := []string{"", "true", "TRUE", "1", "yes"}
	falsy := []string{"false", "FALSE", "0", "no"}
	for _, raw := range truthy {
		v, err := p.Parse("v", raw)
		if err != nil || !v {
			t.Errorf("Parse(%q) = %v, %v; want true, nil", raw, v, err)
		}
	}
	for _, raw := range falsy {
		v, err := p.Parse("v", raw)
		if err != nil || v {
			t.Errorf("Parse(%q) = %v, %v; want false, nil", raw, v, err)
		}
	}
	if _, err := p.Parse("v", "maybe"); err == nil {
		t.Error("expected error for unrecognized boolean token")
	}
}

func TestBoolDefaultExpectationIsOptional(t *testing.T) {
	if Bool().Default() != ExpectOptional {
		t.Error("Bool() should advertise ExpectOptional so a bare flag needs no value")
	}
}

func TestTriBoolTrueOnEmpty(t *testing.T) {
	// TriBool treats "" as an explicit true, matching Bool's bare-flag
	// convention; BOUUnset only ever results from never occurring.
	v, err := TriBool().Parse("v", "")
	if err != nil || v != BOUTrue {
		t.Errorf("TriBool Parse(\"\") = %v, %v; want BOUTrue, nil", v, err)
	}
}

func TestCharTakesFirstRune(t *testing.T) {
	v, err := Char().Parse("c", "xyz")
	if err != nil || v != 'x' {
		t.Errorf("Char Parse(%q) = %q, %v; want 'x', nil", "xyz", v, err)
	}
	if _, err := Char().Parse("c", ""); err == nil {
		t.Error("expected error for empty char value")
	}
}

func TestLiteralParser(t *testing.T) {
	l := NewLiteral(
		LiteralValue[int]{Name: "low", Value: 0, Help: "low level"},
		LiteralValue[int]{Name: "high", Value: 1, Help: "high level"},
	)
	v, err := l.Parse("level", "high")
	if err != nil || v != 1 {
		t.Fatalf("Parse(high) = %d, %v; want 1, nil", v, err)
	}
	if _, err := l.Parse("level", "medium"); err == nil {
		t.Error("expected error for unregistered literal")
	}

	l.AddLiteralOption("medium", 2, "medium level")
	v, err = l.Parse("level", "medium")
	if err != nil || v != 2 {
		t.Fatalf("Parse(medium) after AddLiteralOption = %d, %v; want 2, nil", v, err)
	}

	l.RemoveLiteralOption("medium")
	if _, err := l.Parse("level", "medium"); err == nil {
		t.Error("expected error after RemoveLiteralOption")
	}
}

func TestStringIsIdentity(t *testing.T) {
	v, err := String().Parse("s", "anything at all")
	if err != nil || v != "anything at all" {
		t.Errorf("String Parse = %q, %v", v, err)
	}
}
