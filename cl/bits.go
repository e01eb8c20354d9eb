package cl

import (
	"fmt"

	"github.com/dzonerzy/cl/parsers"
)

// BitValue is satisfied by any int-based enum type, the shape LLVM's
// cl::bits expects for its template parameter.
type BitValue interface{ ~int }

// Bits is a bit-set command-line option: each occurrence ORs the parsed
// enum value's bit into storage. Its storage is a shared unsigned bit
// vector rather than a T, so Location[T] (typed to the element type) does
// not apply here; external-variable binding uses BitsLocation(*uint) instead.
type Bits[T BitValue] struct {
	*optionBase
	parser    parsers.Parser[T]
	value     *uint
	owned     uint
	positions []int
	callback  func(T)
}

// NewBits declares a bit-set option named name, parsed by p.
func NewBits[T BitValue](name string, p parsers.Parser[T], mods ...Modifier[T]) (*Bits[T], error) {
	cfg := &modCfg[T]{}
	applyMods(cfg, mods)
	if err := cfg.locationErr(name); err != nil {
		return nil, err
	}

	b := &Bits[T]{parser: p, callback: cfg.callback}
	if cfg.bitsLocation != nil {
		b.value = cfg.bitsLocation
	} else {
		b.value = &b.owned
	}

	occurs := ZeroOrMore
	if cfg.numOccurs != nil {
		occurs = *cfg.numOccurs
	}
	hidden := NotHidden
	if cfg.hidden != nil {
		hidden = *cfg.hidden
	}

	b.optionBase = newOptionBase(occurs, hidden)
	b.optionBase.argName = name
	if cfg.argName != "" {
		b.optionBase.argName = cfg.argName
	}
	b.optionBase.helpStr = cfg.desc
	b.optionBase.valueStr = cfg.valueDesc
	b.optionBase.categories = cfg.categories
	b.optionBase.subs = cfg.subs
	b.optionBase.format = cfg.format
	b.optionBase.misc = cfg.misc

	b.optionBase.valueExpectedDefault = func() ValueExpected { return fromExpectation(p.Default()) }
	b.optionBase.setDefault = func() { *b.value = 0 }
	b.optionBase.handle = func(pos int, argName, raw string) error {
		v, err := p.Parse(argName, raw)
		if err != nil {
			return &ParseError{Kind: ParseFailure, Option: argName, Message: err.Error()}
		}
		bitPos := uint(v)
		if bitPos >= 32 {
			return b.Errorf("enum value %d exceeds width of bit vector", bitPos)
		}
		*b.value |= 1 << bitPos
		b.positions = append(b.positions, pos)
		b.setPosition(pos)
		if b.callback != nil {
			b.callback(v)
		}
		return nil
	}

	if err := Register(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Get returns the raw bit vector.
func (b *Bits[T]) Get() uint { return *b.value }

// IsSet reports whether v's bit is set.
func (b *Bits[T]) IsSet(v T) bool { return *b.value&(1<<uint(v)) != 0 }

// Clear zeroes the bit vector.
func (b *Bits[T]) Clear() { *b.value = 0 }

// ValueString renders the bit vector for -print-options.
func (b *Bits[T]) ValueString() string { return fmt.Sprintf("0x%x", *b.value) }

// Changed reports whether any bit has been set.
func (b *Bits[T]) Changed() bool { return *b.value != 0 }
