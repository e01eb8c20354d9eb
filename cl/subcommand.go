package cl

// SubCommand is a named scope with its own Registry. Two distinguished
// instances always exist: TopLevel (selected when argv carries no
// recognized subcommand name) and All (a sentinel whose options are
// resolved into every real subcommand's lookup at parse time).
type SubCommand struct {
	name        string
	description string
	registry    *Registry
	selected    bool
}

var subcommands = ManagedStaticOf(func() map[string]*SubCommand {
	return make(map[string]*SubCommand)
})

var topLevel = ManagedStaticOf(func() *SubCommand {
	return &SubCommand{name: "", description: "", registry: newRegistry()}
})

var allSub = ManagedStaticOf(func() *SubCommand {
	return &SubCommand{name: "*", description: "all subcommands", registry: newRegistry()}
})

// TopLevelSubCommand returns the special subcommand representing "no
// subcommand given".
func TopLevelSubCommand() *SubCommand { return topLevel.Get() }

// AllSubCommand returns the special subcommand that puts an option into
// every subcommand's lookup.
func AllSubCommand() *SubCommand { return allSub.Get() }

// NewSubCommand registers a new named subcommand scope.
func NewSubCommand(name, description string) *SubCommand {
	sc := &SubCommand{name: name, description: description, registry: newRegistry()}
	subcommands.Get()[name] = sc
	return sc
}

// LookupSubCommand finds a registered subcommand by name; TopLevel and All
// are never returned since they aren't addressed by argv[1].
func LookupSubCommand(name string) (*SubCommand, bool) {
	sc, ok := subcommands.Get()[name]
	return sc, ok
}

func (s *SubCommand) Name() string        { return s.name }
func (s *SubCommand) Description() string { return s.description }

// Selected reports whether this subcommand was chosen during the most
// recent parse (the CORE's "explicit operator bool").
func (s *SubCommand) Selected() bool { return s.selected }

func (s *SubCommand) reset() {
	s.selected = false
	s.registry = newRegistry()
}

