// Package parsers implements the CORE spec's value-parser collaborator
// contract: parse(name, raw) -> (value, ok) | error, plus an advertised
// default value-expectation and a value-name for help rendering.
package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// Expectation mirrors cl.ValueExpected without importing the cl package
// (which imports parsers), advertising whether a parser wants, accepts, or
// refuses an accompanying raw value by default.
type Expectation int

const (
	ExpectRequired Expectation = iota
	ExpectOptional
	ExpectDisallowed
)

// Parser is the per-type value-parser contract.
type Parser[T any] interface {
	Parse(name, raw string) (T, error)
	Default() Expectation
	ValueName() string
}

type funcParser[T any] struct {
	parse     func(name, raw string) (T, error)
	def       Expectation
	valueName string
}

func (p funcParser[T]) Parse(name, raw string) (T, error) { return p.parse(name, raw) }
func (p funcParser[T]) Default() Expectation              { return p.def }
func (p funcParser[T]) ValueName() string                 { return p.valueName }

// Int parses decimal/hex/octal integers via strconv, base 0.
func Int() Parser[int] {
	return funcParser[int]{
		valueName: "int",
		def:       ExpectRequired,
		parse: func(name, raw string) (int, error) {
			v, err := strconv.ParseInt(raw, 0, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: invalid integer value %q", name, raw)
			}
			return int(v), nil
		},
	}
}

// Uint parses unsigned integers.
func Uint() Parser[uint] {
	return funcParser[uint]{
		valueName: "uint",
		def:       ExpectRequired,
		parse: func(name, raw string) (uint, error) {
			v, err := strconv.ParseUint(raw, 0, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: invalid unsigned integer value %q", name, raw)
			}
			return uint(v), nil
		},
	}
}

// Float64 parses floating point values.
func Float64() Parser[float64] {
	return funcParser[float64]{
		valueName: "number",
		def:       ExpectRequired,
		parse: func(name, raw string) (float64, error) {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, fmt.Errorf("%s: invalid floating point value %q", name, raw)
			}
			return v, nil
		},
	}
}

// String is the identity parser.
func String() Parser[string] {
	return funcParser[string]{
		valueName: "string",
		def:       ExpectRequired,
		parse: func(_, raw string) (string, error) { return raw, nil },
	}
}

// Char parses a single-character value: the first rune of raw.
func Char() Parser[rune] {
	return funcParser[rune]{
		valueName: "char",
		def:       ExpectRequired,
		parse: func(name, raw string) (rune, error) {
			for _, r := range raw {
				return r, nil
			}
			return 0, fmt.Errorf("%s: expected a single character, got empty value", name)
		},
	}
}

// Bool accepts "", "true", "false", "1", "0", "yes", "no" case-insensitively;
// an empty raw value (bare flag) parses to true.
func Bool() Parser[bool] {
	return funcParser[bool]{
		valueName: "",
		def:       ExpectOptional,
		parse: func(name, raw string) (bool, error) {
			if raw == "" {
				return true, nil
			}
			switch strings.ToLower(raw) {
			case "true", "1", "yes":
				return true, nil
			case "false", "0", "no":
				return false, nil
			}
			return false, fmt.Errorf("%s: invalid boolean value %q", name, raw)
		},
	}
}

// BoolOrDefault is LLVM's tri-state bool: unset/true/false.
type BoolOrDefault int

const (
	BOUUnset BoolOrDefault = iota
	BOUTrue
	BOUFalse
)

// TriBool parses the same token set as Bool but yields the tri-state type;
// an empty raw value (bare flag) parses to BOUTrue, so BOUUnset only means
// the option never occurred.
func TriBool() Parser[BoolOrDefault] {
	return funcParser[BoolOrDefault]{
		valueName: "",
		def:       ExpectOptional,
		parse: func(name, raw string) (BoolOrDefault, error) {
			if raw == "" {
				return BOUTrue, nil
			}
			switch strings.ToLower(raw) {
			case "true", "1", "yes":
				return BOUTrue, nil
			case "false", "0", "no":
				return BOUFalse, nil
			}
			return BOUUnset, fmt.Errorf("%s: invalid boolean value %q", name, raw)
		},
	}
}

// LiteralValue is one entry of a Literal parser's mapping table.
type LiteralValue[T any] struct {
	Name  string
	Value T
	Help  string
}

// Literal is the generic "mapping-table" parser behind enum options: it
// matches a raw token against a registered list of (name, value, help)
// triples, used both for conventional enums and for the "valueless name IS
// the option" exploded form.
type Literal[T any] struct {
	values []LiteralValue[T]
}

// NewLiteral builds a Literal parser from an initial value table; more
// entries may be added later with AddLiteralOption.
func NewLiteral[T any](values ...LiteralValue[T]) *Literal[T] {
	return &Literal[T]{values: append([]LiteralValue[T]{}, values...)}
}

// AddLiteralOption registers one more literal name/value/help triple.
func (l *Literal[T]) AddLiteralOption(name string, value T, help string) {
	l.values = append(l.values, LiteralValue[T]{Name: name, Value: value, Help: help})
}

// RemoveLiteralOption drops a previously registered literal by name.
func (l *Literal[T]) RemoveLiteralOption(name string) {
	for i, v := range l.values {
		if v.Name == name {
			l.values = append(l.values[:i], l.values[i+1:]...)
			return
		}
	}
}

// Values returns the registered table, in registration order.
func (l *Literal[T]) Values() []LiteralValue[T] { return l.values }

func (l *Literal[T]) Parse(name, raw string) (T, error) {
	for _, v := range l.values {
		if v.Name == raw {
			return v.Value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s: %q is not a recognized value", name, raw)
}

func (l *Literal[T]) Default() Expectation { return ExpectRequired }
func (l *Literal[T]) ValueName() string    { return "" }
