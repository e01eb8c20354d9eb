package cl

import (
	"os"

	"github.com/dzonerzy/cl/respfile"
)

// resolveArgv implements section 6's two-source precedence: when envVar
// names a nonempty environment variable, its value is tokenized and
// prepended to argv, so that argv's own occurrences win (correct only for
// options whose semantics prefer the later occurrence, as the spec notes).
// This is a drastically narrowed descendant of the teacher's general
// N-source precedence manager: exactly two sources, fixed order. The
// combined argv is then run through the response-file expander so any
// "@file" token, from either source, is replaced before dispatch sees it.
func resolveArgv(envVar string, argv []string) ([]string, error) {
	combined := argv
	if envVar != "" {
		if val, ok := os.LookupEnv(envVar); ok && val != "" {
			envArgs, err := respfile.SplitEnv(val)
			if err != nil {
				return nil, &ParseError{Kind: ParseFailure, Option: envVar, Message: err.Error()}
			}
			combined = append(envArgs, argv...)
		}
	}
	expanded, err := respfile.Expand(combined)
	if err != nil {
		return nil, &ParseError{Kind: ParseFailure, Message: err.Error()}
	}
	return expanded, nil
}
