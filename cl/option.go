package cl

import "fmt"

// Option is the type-erased handle every concrete option kind (Opt, List,
// Bits, Alias) satisfies. The registry, categorizer, resolver, dispatcher
// and validator only ever see this interface.
type Option interface {
	ArgName() string
	HelpStr() string
	ValueStr() string
	Categories() []*Category
	SubCommands() []*SubCommand

	OccurrencesFlag() NumOccurrencesFlag
	ValueExpectedFlag() ValueExpected
	HiddenFlag() OptionHidden
	FormattingFlag() FormattingFlags
	Misc() MiscFlags
	Position() int
	NumAdditionalVals() int

	HasArgStr() bool
	IsPositional() bool
	IsSink() bool
	IsGrouping() bool
	IsDefaultOption() bool
	IsConsumeAfter() bool
	InAllSubCommands() bool

	NumOccurrences() int
	LastPosition() int
	ExtraOptionNames() []string

	AddOccurrence(pos int, argName, value string, multiArg bool) error
	SetDefault()
	ValueExpectedFlagDefault() ValueExpected

	setPosition(pos int)
	addCategory(c *Category)
	addSubCommand(s *SubCommand)
	setArgStr(s string)
	setFullyInitialized(v bool)
	isFullyInitialized() bool

	Errorf(format string, args ...any) error
}

// optionBase carries the state and bookkeeping shared by every option kind.
// Concrete kinds (opt, list, bits, alias) embed it and wire the three
// behavior hooks (handle, valueExpectedDefault, setDefault) to closures over
// their own storage, playing the role LLVM gives to virtual overrides.
type optionBase struct {
	argName   string
	helpStr   string
	valueStr  string
	occurs    NumOccurrencesFlag
	valueExp  ValueExpected
	hidden    OptionHidden
	format    FormattingFlags
	misc      MiscFlags
	position  int
	addlVals  int
	categories []*Category
	subs      []*SubCommand

	numOccurrences int
	lastPosition   int
	fullyInit      bool

	handle               func(pos int, argName, value string) error
	valueExpectedDefault func() ValueExpected
	setDefault           func()
	extraOptionNames     func() []string
}

func newOptionBase(occurs NumOccurrencesFlag, hidden OptionHidden) *optionBase {
	return &optionBase{occurs: occurs, hidden: hidden}
}

func (o *optionBase) ArgName() string  { return o.argName }
func (o *optionBase) HelpStr() string  { return o.helpStr }
func (o *optionBase) ValueStr() string { return o.valueStr }

func (o *optionBase) Categories() []*Category    { return o.categories }
func (o *optionBase) SubCommands() []*SubCommand { return o.subs }

func (o *optionBase) OccurrencesFlag() NumOccurrencesFlag { return o.occurs }

func (o *optionBase) ValueExpectedFlag() ValueExpected {
	if o.valueExp == ValueUnspecified {
		return o.ValueExpectedFlagDefault()
	}
	return o.valueExp
}

func (o *optionBase) ValueExpectedFlagDefault() ValueExpected {
	if o.valueExpectedDefault != nil {
		return o.valueExpectedDefault()
	}
	return ValueRequired
}

func (o *optionBase) HiddenFlag() OptionHidden     { return o.hidden }
func (o *optionBase) FormattingFlag() FormattingFlags { return o.format }
func (o *optionBase) Misc() MiscFlags              { return o.misc }
func (o *optionBase) Position() int                { return o.position }
func (o *optionBase) NumAdditionalVals() int        { return o.addlVals }

func (o *optionBase) HasArgStr() bool  { return o.argName != "" }
func (o *optionBase) IsPositional() bool { return o.format == Positional }
func (o *optionBase) IsSink() bool       { return o.misc.has(Sink) }
func (o *optionBase) IsGrouping() bool   { return o.misc.has(Grouping) }
func (o *optionBase) IsDefaultOption() bool { return o.misc.has(DefaultOption) }
func (o *optionBase) IsConsumeAfter() bool  { return o.occurs == ConsumeAfter }

func (o *optionBase) InAllSubCommands() bool {
	for _, s := range o.subs {
		if s == AllSubCommand() {
			return true
		}
	}
	return false
}

func (o *optionBase) NumOccurrences() int { return o.numOccurrences }
func (o *optionBase) LastPosition() int   { return o.lastPosition }

func (o *optionBase) ExtraOptionNames() []string {
	if o.extraOptionNames != nil {
		return o.extraOptionNames()
	}
	return nil
}

func (o *optionBase) setPosition(pos int) { o.position = pos }
func (o *optionBase) addCategory(c *Category) {
	o.categories = append(o.categories, c)
}
func (o *optionBase) addSubCommand(s *SubCommand) {
	o.subs = append(o.subs, s)
}
func (o *optionBase) setArgStr(s string) { o.argName = s }

// SetDefault restores the option to its just-registered state: occurrence
// bookkeeping cleared and storage reset via the concrete kind's closure.
func (o *optionBase) SetDefault() {
	o.numOccurrences = 0
	o.lastPosition = 0
	if o.setDefault != nil {
		o.setDefault()
	}
}

func (o *optionBase) setFullyInitialized(v bool) { o.fullyInit = v }
func (o *optionBase) isFullyInitialized() bool   { return o.fullyInit }

// AddOccurrence enforces cardinality before dispatching to the handler.
func (o *optionBase) AddOccurrence(pos int, argName, value string, multiArg bool) error {
	if !multiArg {
		singleValued := o.occurs == Optional || o.occurs == Required
		if singleValued && o.numOccurrences > 0 && !o.IsDefaultOption() {
			return &ParseError{Kind: DuplicateOccurrence, Option: argName, Message: "may only be specified once"}
		}
		o.numOccurrences++
		o.lastPosition = pos
	}
	if o.handle == nil {
		return nil
	}
	return o.handle(pos, argName, value)
}

// Errorf formats a diagnostic in the "<name>: <message>" shape shared by
// every option kind.
func (o *optionBase) Errorf(format string, args ...any) error {
	name := o.argName
	if name == "" {
		name = "<positional>"
	}
	return &ParseError{
		Kind:    Configuration,
		Option:  name,
		Message: fmt.Sprintf(format, args...),
	}
}
