package cl

// diffable is implemented by every concrete option kind whose value can be
// compared against its declared default, for -print-options diffing.
type diffable interface {
	ValueString() string
	Changed() bool
}
