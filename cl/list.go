package cl

import (
	"fmt"

	"github.com/dzonerzy/cl/parsers"
)

// List is a repeatable command-line option: every occurrence appends to
// its storage in argv order.
type List[T any] struct {
	*optionBase
	parser          parsers.Parser[T]
	value           *[]T
	owned           []T
	defaults        []T
	defaultAssigned bool
	positions       []int
	callback        func(T)
}

// NewList declares a repeatable option named name, parsed by p.
func NewList[T any](name string, p parsers.Parser[T], mods ...Modifier[T]) (*List[T], error) {
	cfg := &modCfg[T]{}
	applyMods(cfg, mods)
	if err := cfg.locationErr(name); err != nil {
		return nil, err
	}

	l := &List[T]{parser: p, callback: cfg.callback}
	if cfg.listLocation != nil {
		l.value = cfg.listLocation
	} else {
		l.value = &l.owned
	}

	occurs := ZeroOrMore
	if cfg.numOccurs != nil {
		occurs = *cfg.numOccurs
	}
	hidden := NotHidden
	if cfg.hidden != nil {
		hidden = *cfg.hidden
	}

	l.optionBase = newOptionBase(occurs, hidden)
	l.optionBase.argName = name
	if cfg.argName != "" {
		l.optionBase.argName = cfg.argName
	}
	l.optionBase.helpStr = cfg.desc
	l.optionBase.valueStr = cfg.valueDesc
	if l.optionBase.valueStr == "" {
		l.optionBase.valueStr = p.ValueName()
	}
	l.optionBase.categories = cfg.categories
	l.optionBase.subs = cfg.subs
	l.optionBase.format = cfg.format
	l.optionBase.misc = cfg.misc
	l.optionBase.addlVals = cfg.addlVals

	if len(cfg.initVals) > 0 {
		l.defaults = append(l.defaults, cfg.initVals...)
		l.defaultAssigned = true
		*l.value = append(*l.value, cfg.initVals...)
	}

	l.optionBase.valueExpectedDefault = func() ValueExpected { return fromExpectation(p.Default()) }
	l.optionBase.setDefault = func() {
		l.positions = nil
		*l.value = nil
		if len(l.defaults) > 0 {
			*l.value = append(*l.value, l.defaults...)
			l.defaultAssigned = true
		}
	}
	l.optionBase.handle = func(pos int, argName, raw string) error {
		if l.defaultAssigned {
			*l.value = nil
			l.defaultAssigned = false
		}
		v, err := p.Parse(argName, raw)
		if err != nil {
			return &ParseError{Kind: ParseFailure, Option: argName, Message: err.Error()}
		}
		*l.value = append(*l.value, v)
		l.positions = append(l.positions, pos)
		l.setPosition(pos)
		if l.callback != nil {
			l.callback(v)
		}
		return nil
	}

	if err := Register(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns the accumulated values in occurrence order.
func (l *List[T]) Get() []T { return *l.value }

// Positions returns the argv position each accumulated value was matched
// at, parallel to Get().
func (l *List[T]) Positions() []int { return l.positions }

// Clear empties the list's storage and position history.
func (l *List[T]) Clear() {
	*l.value = nil
	l.positions = nil
}

// ValueString renders the accumulated values for -print-options.
func (l *List[T]) ValueString() string { return fmt.Sprintf("%v", *l.value) }

// Changed reports whether any occurrence has been recorded (lists don't
// track default-diffing beyond "has it grown since defaults").
func (l *List[T]) Changed() bool { return !l.defaultAssigned && len(*l.value) > 0 }
