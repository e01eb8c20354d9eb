package cl

import (
	"fmt"
	"reflect"

	"github.com/dzonerzy/cl/parsers"
)

// EnumOpt is a scalar option whose values come from a parsers.Literal
// mapping table. It supports the source's two enum registration styles:
//
//   - conventional: name is non-empty, and the option is matched like any
//     other named Opt ("-level=high"), with the literal table supplying
//     the allowed values.
//   - exploded: name is empty, and every literal's own name becomes its
//     own valueless top-level option ("-high", "-low"), all setting the
//     same storage. This is getExtraOptionNames's case from Parser.h: an
//     enum option with no ArgStr explodes its value table into flags.
type EnumOpt[T any] struct {
	*optionBase
	literal  *parsers.Literal[T]
	exploded bool
	value    *T
	owned    T
	deflt    T
	hasDeflt bool
	callback func(T)
}

// NewEnumOpt declares an enum option backed by lit. Pass "" as name to get
// the exploded registration mode; lit must carry at least one value in
// that case, since the literal names are the only way the option is ever
// matched.
func NewEnumOpt[T any](name string, lit *parsers.Literal[T], mods ...Modifier[T]) (*EnumOpt[T], error) {
	cfg := &modCfg[T]{}
	applyMods(cfg, mods)
	if err := cfg.locationErr(name); err != nil {
		return nil, err
	}

	exploded := name == "" && cfg.argName == ""
	if exploded && len(lit.Values()) == 0 {
		return nil, (&optionBase{}).Errorf("cl.NewEnumOpt: exploded registration requires at least one literal value")
	}

	e := &EnumOpt[T]{literal: lit, exploded: exploded, callback: cfg.callback}
	if cfg.location != nil {
		e.value = cfg.location
	} else {
		e.value = &e.owned
	}

	occurs := Optional
	if cfg.numOccurs != nil {
		occurs = *cfg.numOccurs
	}
	hidden := NotHidden
	if cfg.hidden != nil {
		hidden = *cfg.hidden
	}

	e.optionBase = newOptionBase(occurs, hidden)
	e.optionBase.argName = name
	if cfg.argName != "" {
		e.optionBase.argName = cfg.argName
	}
	e.optionBase.helpStr = cfg.desc
	e.optionBase.valueStr = cfg.valueDesc
	if e.optionBase.valueStr == "" && !exploded {
		e.optionBase.valueStr = lit.ValueName()
	}
	e.optionBase.categories = cfg.categories
	e.optionBase.subs = cfg.subs
	e.optionBase.format = cfg.format
	e.optionBase.misc = cfg.misc
	e.optionBase.addlVals = cfg.addlVals
	if cfg.valueExp != nil {
		e.optionBase.valueExp = *cfg.valueExp
	}

	if cfg.hasInit {
		e.deflt = cfg.initVal
		e.hasDeflt = true
		*e.value = cfg.initVal
	}

	e.optionBase.valueExpectedDefault = func() ValueExpected {
		if exploded {
			return ValueDisallowed
		}
		return fromExpectation(lit.Default())
	}
	e.optionBase.setDefault = func() {
		if e.hasDeflt {
			*e.value = e.deflt
		} else {
			var zero T
			*e.value = zero
		}
	}
	if exploded {
		e.optionBase.extraOptionNames = func() []string {
			names := make([]string, len(lit.Values()))
			for i, v := range lit.Values() {
				names[i] = v.Name
			}
			return names
		}
		// In exploded mode every occurrence arrives via one of the literal
		// names themselves, carrying no value; argName IS the matched
		// literal's name, so parse against it directly instead of raw.
		e.optionBase.handle = func(pos int, argName, _ string) error {
			v, err := lit.Parse(argName, argName)
			if err != nil {
				return &ParseError{Kind: ParseFailure, Option: argName, Message: err.Error()}
			}
			*e.value = v
			e.setPosition(pos)
			if e.callback != nil {
				e.callback(v)
			}
			return nil
		}
	} else {
		e.optionBase.handle = func(pos int, argName, raw string) error {
			v, err := lit.Parse(argName, raw)
			if err != nil {
				return &ParseError{Kind: ParseFailure, Option: argName, Message: err.Error()}
			}
			*e.value = v
			e.setPosition(pos)
			if e.callback != nil {
				e.callback(v)
			}
			return nil
		}
	}

	if err := Register(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns the option's current value.
func (e *EnumOpt[T]) Get() T { return *e.value }

// Set overwrites the option's value directly, bypassing parsing.
func (e *EnumOpt[T]) Set(v T) { *e.value = v }

// Literal exposes the underlying value table, e.g. to add more entries
// after construction with AddLiteralOption.
func (e *EnumOpt[T]) Literal() *parsers.Literal[T] { return e.literal }

// ValueString renders the current value for -print-options, using the
// matching literal name when one is registered.
func (e *EnumOpt[T]) ValueString() string {
	for _, v := range e.literal.Values() {
		if reflect.DeepEqual(v.Value, *e.value) {
			return v.Name
		}
	}
	return fmt.Sprintf("%v", *e.value)
}

// Changed reports whether the current value differs from the declared
// default.
func (e *EnumOpt[T]) Changed() bool {
	if !e.hasDeflt {
		var zero T
		return !reflect.DeepEqual(*e.value, zero)
	}
	return !reflect.DeepEqual(*e.value, e.deflt)
}
