package cl

import (
	"fmt"
	"reflect"

	"github.com/dzonerzy/cl/parsers"
)

// Opt is a scalar command-line option: exactly one live value, set either
// by Init or by the most recent matching occurrence.
type Opt[T any] struct {
	*optionBase
	parser   parsers.Parser[T]
	value    *T
	owned    T
	deflt    T
	hasDeflt bool
	callback func(T)
}

// NewOpt declares a scalar option named name, parsed by p, customized by
// mods. It registers itself into the registry as a side effect, mirroring
// the source's static-constructor registration model.
func NewOpt[T any](name string, p parsers.Parser[T], mods ...Modifier[T]) (*Opt[T], error) {
	cfg := &modCfg[T]{}
	applyMods(cfg, mods)
	if err := cfg.locationErr(name); err != nil {
		return nil, err
	}

	o := &Opt[T]{parser: p, callback: cfg.callback}
	if cfg.location != nil {
		o.value = cfg.location
	} else {
		o.value = &o.owned
	}

	occurs := Optional
	if cfg.numOccurs != nil {
		occurs = *cfg.numOccurs
	}
	hidden := NotHidden
	if cfg.hidden != nil {
		hidden = *cfg.hidden
	}

	o.optionBase = newOptionBase(occurs, hidden)
	o.optionBase.argName = name
	if cfg.argName != "" {
		o.optionBase.argName = cfg.argName
	}
	o.optionBase.helpStr = cfg.desc
	o.optionBase.valueStr = cfg.valueDesc
	if o.optionBase.valueStr == "" {
		o.optionBase.valueStr = p.ValueName()
	}
	o.optionBase.categories = cfg.categories
	o.optionBase.subs = cfg.subs
	o.optionBase.format = cfg.format
	o.optionBase.misc = cfg.misc
	o.optionBase.addlVals = cfg.addlVals
	if cfg.valueExp != nil {
		o.optionBase.valueExp = *cfg.valueExp
	}

	if cfg.hasInit {
		o.deflt = cfg.initVal
		o.hasDeflt = true
		*o.value = cfg.initVal
	}

	o.optionBase.valueExpectedDefault = func() ValueExpected { return fromExpectation(p.Default()) }
	o.optionBase.setDefault = func() {
		if o.hasDeflt {
			*o.value = o.deflt
		} else {
			var zero T
			*o.value = zero
		}
	}
	o.optionBase.handle = func(pos int, argName, raw string) error {
		v, err := p.Parse(argName, raw)
		if err != nil {
			return &ParseError{Kind: ParseFailure, Option: argName, Message: err.Error()}
		}
		*o.value = v
		o.setPosition(pos)
		if o.callback != nil {
			o.callback(v)
		}
		return nil
	}

	if err := Register(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Get returns the option's current value.
func (o *Opt[T]) Get() T { return *o.value }

// Set overwrites the option's value directly, bypassing parsing.
func (o *Opt[T]) Set(v T) { *o.value = v }

// Parser exposes the underlying value parser, e.g. so an enum Opt can add
// more literal names after construction.
func (o *Opt[T]) Parser() parsers.Parser[T] { return o.parser }

// ValueString renders the current value for -print-options.
func (o *Opt[T]) ValueString() string { return fmt.Sprintf("%v", *o.value) }

// Changed reports whether the current value differs from the declared
// default.
func (o *Opt[T]) Changed() bool {
	if !o.hasDeflt {
		var zero T
		return !reflect.DeepEqual(*o.value, zero)
	}
	return !reflect.DeepEqual(*o.value, o.deflt)
}
