package cl

import (
	"strings"

	"github.com/dzonerzy/cl/internal/intern"
)

// tokKind is the shape the Categorizer assigns a raw argv entry, before the
// Resolver attempts any name disambiguation.
type tokKind uint8

const (
	tokLong tokKind = iota
	tokShort
	tokBareword
	tokDoubleDash
)

// token is one categorized argv entry.
type token struct {
	kind     tokKind
	name     string // pre-"=" portion for tokLong/tokShort; full word for tokBareword
	value    string
	hasValue bool
	raw      string // the original argv entry, for diagnostics and verbatim forwarding
}

func splitEq(s string) (name, value string, hasValue bool) {
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}
	return s, "", false
}

// Tokenize splits argv (already past the subcommand name, if any) into the
// shape the Resolver consumes. It is implemented eagerly rather than as a
// lazy forward sequence, a simplification over the CORE spec's described
// shape that does not change observable behavior for a finite argv.
func Tokenize(argv []string) []token {
	tokens := make([]token, 0, len(argv))
	doubleDashSeen := false
	for _, a := range argv {
		if doubleDashSeen {
			tokens = append(tokens, token{kind: tokBareword, name: a, raw: a})
			continue
		}
		if a == "--" {
			tokens = append(tokens, token{kind: tokDoubleDash, raw: a})
			doubleDashSeen = true
			continue
		}
		if strings.HasPrefix(a, "--") {
			name, value, hasValue := splitEq(a[2:])
			tokens = append(tokens, token{kind: tokLong, name: intern.Intern(name), value: value, hasValue: hasValue, raw: a})
			continue
		}
		if strings.HasPrefix(a, "-") && len(a) > 1 {
			name, value, hasValue := splitEq(a[1:])
			tokens = append(tokens, token{kind: tokShort, name: intern.Intern(name), value: value, hasValue: hasValue, raw: a})
			continue
		}
		tokens = append(tokens, token{kind: tokBareword, name: a, raw: a})
	}
	return tokens
}
