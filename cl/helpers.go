package cl

import (
	"strings"

	"github.com/dzonerzy/cl/parsers"
)

// optionLabel names opt for diagnostics and -help/-print-options rendering:
// its ArgName if it has one, its joined exploded names otherwise (e.g. an
// EnumOpt registered with no ArgStr), or a positional placeholder.
func optionLabel(opt Option) string {
	if opt.ArgName() != "" {
		return opt.ArgName()
	}
	if names := opt.ExtraOptionNames(); len(names) > 0 {
		return strings.Join(names, "|")
	}
	return ""
}

func fromExpectation(e parsers.Expectation) ValueExpected {
	switch e {
	case parsers.ExpectOptional:
		return ValueOptional
	case parsers.ExpectDisallowed:
		return ValueDisallowed
	default:
		return ValueRequired
	}
}
