package cl

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/cl/internal/fuzzy"
	"github.com/dzonerzy/cl/internal/pool"
)

// Dispatcher drives the Categorizer and Resolver over a tokenized argv,
// pulls a value for each match per its value-expectation, and invokes the
// matched option's handler.
type Dispatcher struct {
	trace func(string)
}

// NewDispatcher builds a Dispatcher with tracing disabled.
func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// SetTrace installs a callback invoked once per resolved token, useful for
// diagnosing prefix/grouping ambiguity (entry.go installs one when
// Config.Debug is set).
func (d *Dispatcher) SetTrace(fn func(string)) { d.trace = fn }

func (d *Dispatcher) tracef(format string, args ...any) {
	if d.trace != nil {
		d.trace(fmt.Sprintf(format, args...))
	}
}

func allRequiredPositionalsSatisfied(sub *SubCommand) bool {
	for _, opt := range sub.registry.positionals {
		flag := opt.OccurrencesFlag()
		if (flag == Required || flag == OneOrMore) && opt.NumOccurrences() == 0 {
			return false
		}
	}
	return true
}

// selectSubCommand consumes argv[0] as a subcommand name when it names one,
// marking it (and only it) selected; otherwise TopLevel is selected.
func selectSubCommand(argv []string) (*SubCommand, []string) {
	chosen := TopLevelSubCommand()
	rest := argv
	if len(argv) > 0 {
		if sc, ok := LookupSubCommand(argv[0]); ok {
			chosen = sc
			rest = argv[1:]
		}
	}
	TopLevelSubCommand().selected = chosen == TopLevelSubCommand()
	for _, sc := range subcommands.Get() {
		sc.selected = sc == chosen
	}
	return chosen, rest
}

// Dispatch runs the full token walk described in section 4.F: reset
// occurrence counters, select the active subcommand, then resolve and
// dispatch each token in order.
func (d *Dispatcher) Dispatch(argv []string, cfg *Config) (*SubCommand, error) {
	ResetAllOptionOccurrences()
	sub, rest := selectSubCommand(argv)

	tokens := Tokenize(rest)
	consumeAfterActive := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !consumeAfterActive && sub.registry.consumeAfter != nil && allRequiredPositionalsSatisfied(sub) {
			consumeAfterActive = true
			d.tracef("consume-after activated at token %d", i)
		}

		if consumeAfterActive {
			if tok.kind == tokDoubleDash {
				continue
			}
			ca := sub.registry.consumeAfter
			if err := ca.AddOccurrence(i, ca.ArgName(), tok.raw, false); err != nil {
				return sub, err
			}
			continue
		}

		if tok.kind == tokDoubleDash {
			continue
		}

		m := resolve(tok, sub, cfg.LongOptionsUseDoubleDash)
		d.tracef("token %q -> kind=%d", tok.raw, m.kind)

		switch m.kind {
		case matchUnknown:
			return sub, unknownOptionError(tok.raw, sub)

		case matchGrouped:
			if err := d.dispatchGrouped(&i, tokens, tok, m); err != nil {
				return sub, err
			}

		default: // matchExact, matchPrefix, matchPositional, matchSink
			if err := d.dispatchNamed(&i, tokens, tok, m, sub); err != nil {
				return sub, err
			}
		}
	}
	return sub, nil
}

func (d *Dispatcher) dispatchNamed(i *int, tokens []token, tok token, m match, sub *SubCommand) error {
	opt := m.opt
	argName := opt.ArgName()
	if m.matchedName != "" {
		argName = m.matchedName
	}
	if m.unexpectedVal {
		return &ParseError{Kind: UnexpectedValue, Option: argName, Message: "does not accept an inline value"}
	}

	valExp := opt.ValueExpectedFlag()
	value := ""
	hasValue := false

	switch {
	case m.hasInlineValue:
		value, hasValue = m.inlineValue, true
	case m.kind == matchPositional || m.kind == matchSink:
		value, hasValue = tok.raw, true
	case m.kind == matchPrefix && m.tail != "":
		value, hasValue = m.tail, true
	}

	switch valExp {
	case ValueDisallowed:
		if hasValue && m.kind != matchPositional && m.kind != matchSink {
			return &ParseError{Kind: UnexpectedValue, Option: argName, Message: "does not accept a value"}
		}
	case ValueRequired:
		if !hasValue {
			if *i+1 >= len(tokens) {
				return &ParseError{Kind: MissingValue, Option: argName, Message: "requires a value"}
			}
			*i++
			value, hasValue = tokens[*i].raw, true
		}
	case ValueOptional:
		if !hasValue && *i+1 < len(tokens) {
			next := tokens[*i+1]
			if !looksLikeOption(next, sub, false) {
				*i++
				value, hasValue = tokens[*i].raw, true
			}
		}
	}

	if hasValue && opt.Misc().has(CommaSeparated) {
		pieces := pool.GetStringSlice()
		*pieces = append(*pieces, strings.Split(value, ",")...)
		for _, piece := range *pieces {
			if err := opt.AddOccurrence(*i, argName, piece, false); err != nil {
				pool.PutStringSlice(pieces)
				return err
			}
		}
		pool.PutStringSlice(pieces)
	} else if err := opt.AddOccurrence(*i, argName, value, false); err != nil {
		return err
	}
	for k := 0; k < opt.NumAdditionalVals(); k++ {
		if *i+1 >= len(tokens) {
			return &ParseError{Kind: MissingValue, Option: argName, Message: "missing additional value"}
		}
		*i++
		if err := opt.AddOccurrence(*i, argName, tokens[*i].raw, true); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) dispatchGrouped(i *int, tokens []token, tok token, m match) error {
	for gi, gopt := range m.group {
		last := gi == len(m.group)-1
		if !last {
			if err := gopt.AddOccurrence(*i, gopt.ArgName(), "", false); err != nil {
				return err
			}
			continue
		}
		value := ""
		hasValue := false
		if m.hasInlineValue {
			value, hasValue = m.inlineValue, true
		}
		if !hasValue && gopt.ValueExpectedFlag() == ValueRequired {
			if *i+1 >= len(tokens) {
				return &ParseError{Kind: MissingValue, Option: gopt.ArgName(), Message: "requires a value"}
			}
			*i++
			value, hasValue = tokens[*i].raw, true
		}
		_ = hasValue
		if err := gopt.AddOccurrence(*i, gopt.ArgName(), value, false); err != nil {
			return err
		}
	}
	return nil
}

func unknownOptionError(raw string, sub *SubCommand) error {
	msg := fmt.Sprintf("unknown option %q", raw)
	name := strings.TrimLeft(raw, "-")
	if best, ok := fuzzy.FindBestOptionName(name, candidateNames(sub)); ok {
		msg = fmt.Sprintf("%s, did you mean %q?", msg, best)
	}
	return &ParseError{Kind: UnknownOption, Option: raw, Message: msg}
}

func candidateNames(sub *SubCommand) []string {
	names := pool.GetStringSlice()
	defer pool.PutStringSlice(names)
	for n := range sub.registry.byName {
		*names = append(*names, n)
	}
	for n := range AllSubCommand().registry.byName {
		*names = append(*names, n)
	}
	out := make([]string, len(*names))
	copy(out, *names)
	return out
}
