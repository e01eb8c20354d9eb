package cl

// matchKind is the resolution a single token reached.
type matchKind uint8

const (
	matchExact matchKind = iota
	matchPrefix
	matchGrouped
	matchPositional
	matchSink
	matchUnknown
)

// match is the Resolver's verdict for one token.
type match struct {
	kind           matchKind
	opt            Option
	group          []Option
	tail           string
	inlineValue    string
	hasInlineValue bool
	unexpectedVal  bool   // AlwaysPrefix (or ambiguous) rejected an inline value
	matchedName    string // the argv name that actually resolved opt, when it differs from opt.ArgName() (e.g. one of an exploded EnumOpt's extra names); empty means "use opt.ArgName()"
}

// tryNamed attempts an exact or longest-prefix match of name against sub's
// registry (and the All sentinel's). longOptionsUseDoubleDash gates whether
// a multi-character single-dash token is even eligible for this path, per
// the CORE's "-x is always short/grouped" rule when the flag is set.
func tryNamed(tok token, sub *SubCommand, longOptionsUseDoubleDash bool) match {
	if tok.kind == tokShort && longOptionsUseDoubleDash && len(tok.name) > 1 {
		return match{kind: matchUnknown}
	}
	if opt, ok := sub.registry.lookup(tok.name); ok {
		if f := opt.FormattingFlag(); (f == Prefix || f == AlwaysPrefix) && tok.hasValue {
			if f == AlwaysPrefix {
				return match{kind: matchPrefix, opt: opt, unexpectedVal: true, matchedName: tok.name}
			}
			return match{kind: matchPrefix, opt: opt, tail: tok.value, matchedName: tok.name}
		}
		return match{kind: matchExact, opt: opt, inlineValue: tok.value, hasInlineValue: tok.hasValue, matchedName: tok.name}
	}
	var bestName string
	var bestOpt Option
	consider := func(name string, opt Option) {
		f := opt.FormattingFlag()
		if f != Prefix && f != AlwaysPrefix {
			return
		}
		if len(name) > 0 && len(name) <= len(tok.name) && tok.name[:len(name)] == name && len(name) > len(bestName) {
			bestName, bestOpt = name, opt
		}
	}
	for name, opt := range sub.registry.byName {
		consider(name, opt)
	}
	if sub != AllSubCommand() {
		for name, opt := range AllSubCommand().registry.byName {
			consider(name, opt)
		}
	}
	if bestOpt == nil {
		return match{kind: matchUnknown}
	}
	m := match{kind: matchPrefix, opt: bestOpt, matchedName: bestName}
	if tok.hasValue {
		if bestOpt.FormattingFlag() == AlwaysPrefix {
			return match{kind: matchPrefix, opt: bestOpt, unexpectedVal: true, matchedName: bestName}
		}
		m.tail = tok.value
	} else {
		m.tail = tok.name[len(bestName):]
	}
	return m
}

// tryGrouped attempts to read name as a run of single-character Grouping
// options, per the CORE's grouped-shorts rule: every character but the
// last must resolve to a distinct Grouping option taking no value; the
// last may take a value.
func tryGrouped(tok token, sub *SubCommand) (match, bool) {
	if len(tok.name) < 2 {
		return match{}, false
	}
	var group []Option
	runes := []rune(tok.name)
	seen := map[Option]bool{}
	for i, ch := range runes {
		opt, ok := sub.registry.lookup(string(ch))
		if !ok || !opt.IsGrouping() || seen[opt] {
			return match{}, false
		}
		if i < len(runes)-1 && opt.ValueExpectedFlag() == ValueRequired {
			return match{}, false
		}
		seen[opt] = true
		group = append(group, opt)
	}
	return match{kind: matchGrouped, group: group, inlineValue: tok.value, hasInlineValue: tok.hasValue}, true
}

// resolveUnnamed routes a token that matched no registered name to the next
// underfilled positional in declaration order, or to a sink if none remain,
// or to Unknown. Variadic (ZeroOrMore/OneOrMore) positionals are assumed to
// be the last declared positional (registration does not check this), so
// reaching one ends the scan: it absorbs every remaining positional-bound
// token.
func resolveUnnamed(sub *SubCommand) match {
	for _, opt := range sub.registry.positionals {
		flag := opt.OccurrencesFlag()
		if flag == ZeroOrMore || flag == OneOrMore {
			return match{kind: matchPositional, opt: opt}
		}
		if opt.NumOccurrences() == 0 {
			return match{kind: matchPositional, opt: opt}
		}
	}
	if len(sub.registry.sinks) > 0 {
		return match{kind: matchSink, opt: sub.registry.sinks[0]}
	}
	return match{kind: matchUnknown}
}

// resolve is the Resolver's entry point: (token, active subcommand) -> match.
func resolve(tok token, sub *SubCommand, longOptionsUseDoubleDash bool) match {
	// A variadic PositionalEatsArgs positional that has already taken a value
	// swallows every later token, including ones that look like options.
	for _, opt := range sub.registry.positionals {
		flag := opt.OccurrencesFlag()
		if opt.Misc().has(PositionalEatsArgs) && (flag == ZeroOrMore || flag == OneOrMore) && opt.NumOccurrences() > 0 {
			return match{kind: matchPositional, opt: opt}
		}
	}
	switch tok.kind {
	case tokLong:
		m := tryNamed(tok, sub, false)
		if m.kind != matchUnknown {
			return m
		}
		return resolveUnnamed(sub)
	case tokShort:
		if m := tryNamed(tok, sub, longOptionsUseDoubleDash); m.kind != matchUnknown {
			return m
		}
		if m, ok := tryGrouped(tok, sub); ok {
			return m
		}
		return resolveUnnamed(sub)
	default: // tokBareword
		return resolveUnnamed(sub)
	}
}

// looksLikeOption reports whether tok would resolve to a named or grouped
// match, used by the Dispatcher to decide whether an Optional-value option
// may swallow the following token.
func looksLikeOption(tok token, sub *SubCommand, longOptionsUseDoubleDash bool) bool {
	if tok.kind != tokShort && tok.kind != tokLong {
		return false
	}
	if m := tryNamed(tok, sub, longOptionsUseDoubleDash); m.kind != matchUnknown {
		return true
	}
	if tok.kind == tokShort {
		if _, ok := tryGrouped(tok, sub); ok {
			return true
		}
	}
	return false
}
