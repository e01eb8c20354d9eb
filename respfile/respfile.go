// Package respfile implements the CORE spec's response-file and
// environment-variable tokenizing collaborator: an optional pre-pass with
// the single contract expand(argv) -> argv', producing an argv the core
// engine consumes without further quoting logic of its own.
package respfile

import (
	"fmt"
	"os"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// Expand walks argv, replacing every "@file" token with the shell-quoted
// contents of that file, recursively (a file's own contents may reference
// further @files). It leaves every other token untouched.
func Expand(argv []string) ([]string, error) {
	out := make([]string, 0, len(argv))
	for _, a := range argv {
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			out = append(out, a)
			continue
		}
		path := a[1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("respfile: reading %s: %w", path, err)
		}
		words, err := shellquote.Split(string(data))
		if err != nil {
			return nil, fmt.Errorf("respfile: parsing %s: %w", path, err)
		}
		expanded, err := Expand(words)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// SplitEnv tokenizes an environment variable's value the same way a shell
// would, for prepending to argv ahead of real command-line tokens.
func SplitEnv(value string) ([]string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	return shellquote.Split(value)
}
