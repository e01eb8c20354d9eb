package cl

// modCfg accumulates the effect of every Modifier[T] applied to an option
// under construction, mirroring the source's Behavior.h apply(Option&)
// pattern with a typed accumulator instead of per-modifier virtual calls.
type modCfg[T any] struct {
	desc      string
	valueDesc string
	hasInit   bool
	initVal   T
	initVals  []T
	location  *T
	locationSet bool
	locationDup bool
	listLocation    *[]T
	listLocationSet bool
	listLocationDup bool
	bitsLocation    *uint
	bitsLocationSet bool
	bitsLocationDup bool
	categories []*Category
	subs      []*SubCommand
	callback  func(T)
	hidden    *OptionHidden
	numOccurs *NumOccurrencesFlag
	argName   string
	format    FormattingFlags
	misc      MiscFlags
	addlVals  int
	valueExp  *ValueExpected
}

// locationErr reports a Configuration error if a location-binding modifier
// was applied more than once, per section 7's "two location() bindings"
// example. name is the option's argument name, used for the error message.
func (c *modCfg[T]) locationErr(name string) error {
	if c.locationDup {
		return &ParseError{Kind: Configuration, Option: name, Message: "location() applied more than once"}
	}
	if c.listLocationDup {
		return &ParseError{Kind: Configuration, Option: name, Message: "location() applied more than once"}
	}
	if c.bitsLocationDup {
		return &ParseError{Kind: Configuration, Option: name, Message: "bitsLocation() applied more than once"}
	}
	return nil
}

// Modifier is a composable construction-time option applied to Opt[T],
// List[T] and Bits[T] alike.
type Modifier[T any] func(*modCfg[T])

// Desc sets the option's help string.
func Desc[T any](s string) Modifier[T] {
	return func(c *modCfg[T]) { c.desc = s }
}

// ValueDesc sets the value placeholder shown in -help (e.g. "<path>").
func ValueDesc[T any](s string) Modifier[T] {
	return func(c *modCfg[T]) { c.valueDesc = s }
}

// Init sets the scalar option's initial value.
func Init[T any](v T) Modifier[T] {
	return func(c *modCfg[T]) { c.hasInit = true; c.initVal = v }
}

// ListInit seeds a List[T]'s initial values.
func ListInit[T any](vs ...T) Modifier[T] {
	return func(c *modCfg[T]) { c.initVals = append(c.initVals, vs...) }
}

// Location binds the option's storage to an externally-owned variable
// instead of letting the option own its storage. Applying it twice is a
// Configuration error, enforced by the concrete option constructor.
func Location[T any](p *T) Modifier[T] {
	return func(c *modCfg[T]) {
		if c.locationSet {
			c.locationDup = true
			return
		}
		c.locationSet = true
		c.location = p
	}
}

// ListLocation is cl.List[T]'s form of Location: List stores a slice of T
// rather than a T, so Location[T] (typed to the element type) can't
// type-check against it. Applying it twice is a Configuration error, same
// as Location.
func ListLocation[T any](p *[]T) Modifier[T] {
	return func(c *modCfg[T]) {
		if c.listLocationSet {
			c.listLocationDup = true
			return
		}
		c.listLocationSet = true
		c.listLocation = p
	}
}

// BitsLocation is cl.Bits[T]'s form of Location: Bits stores a shared
// unsigned bit vector rather than a T, so its external-variable binding is
// typed *uint instead of *T. Applying it twice is a Configuration error,
// same as Location.
func BitsLocation[T BitValue](p *uint) Modifier[T] {
	return func(c *modCfg[T]) {
		if c.bitsLocationSet {
			c.bitsLocationDup = true
			return
		}
		c.bitsLocationSet = true
		c.bitsLocation = p
	}
}

// Cat attaches a display category.
func Cat[T any](cat *Category) Modifier[T] {
	return func(c *modCfg[T]) { c.categories = append(c.categories, cat) }
}

// Sub scopes the option to a subcommand.
func Sub[T any](sub *SubCommand) Modifier[T] {
	return func(c *modCfg[T]) { c.subs = append(c.subs, sub) }
}

// Callback installs a function invoked with every successfully parsed
// value, in addition to the normal storage write.
func Callback[T any](fn func(T)) Modifier[T] {
	return func(c *modCfg[T]) { c.callback = fn }
}

// HiddenOpt sets the option's -help visibility.
func HiddenOpt[T any](h OptionHidden) Modifier[T] {
	return func(c *modCfg[T]) { c.hidden = &h }
}

// Occurrences overrides the default NumOccurrencesFlag (Optional for Opt,
// ZeroOrMore for List/Bits).
func Occurrences[T any](f NumOccurrencesFlag) Modifier[T] {
	return func(c *modCfg[T]) { c.numOccurs = &f }
}

// ArgStr sets the option's argument name explicitly (most callers instead
// pass the name as the option's first constructor argument).
func ArgStr[T any](name string) Modifier[T] {
	return func(c *modCfg[T]) { c.argName = name }
}

// PositionalOpt marks the option as matched by argv ordinal rather than by
// name; it must carry no ArgStr.
func PositionalOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.format = Positional }
}

// PrefixOpt marks the option for longest-prefix matching (-Lpath -> -L,
// value "path").
func PrefixOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.format = Prefix }
}

// AlwaysPrefixOpt is PrefixOpt, additionally rejecting the inline =value
// form.
func AlwaysPrefixOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.format = AlwaysPrefix }
}

// CommaSeparatedOpt splits the raw value at commas, dispatching once per
// piece, meaningful on List[T] options.
func CommaSeparatedOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.misc |= CommaSeparated }
}

// PositionalEatsArgsOpt marks a ZeroOrMore/OneOrMore positional as greedily
// consuming tokens that look like options until the next positional's turn.
func PositionalEatsArgsOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.misc |= PositionalEatsArgs }
}

// SinkOpt marks the option as the catch-all for otherwise-unmatched tokens.
func SinkOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.misc |= Sink }
}

// GroupingOpt marks a single-character option as eligible for grouped-short
// dispatch (-abc == -a -b -c).
func GroupingOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.misc |= Grouping }
}

// DefaultOptionOpt allows arbitrarily many overriding occurrences of an
// otherwise single-valued option, per the CORE spec's resolved Open
// Question.
func DefaultOptionOpt[T any]() Modifier[T] {
	return func(c *modCfg[T]) { c.misc |= DefaultOption }
}

// AdditionalVals declares n extra consecutive tokens this option consumes
// per occurrence (LLVM's multi_val).
func AdditionalVals[T any](n int) Modifier[T] {
	return func(c *modCfg[T]) { c.addlVals = n }
}

// ValueExpectedOpt overrides the option's value-expectation instead of
// deferring to the parser's advertised default.
func ValueExpectedOpt[T any](v ValueExpected) Modifier[T] {
	return func(c *modCfg[T]) { c.valueExp = &v }
}

func applyMods[T any](c *modCfg[T], mods []Modifier[T]) {
	for _, m := range mods {
		m(c)
	}
}
