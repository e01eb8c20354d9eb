package cl

// Register finishes construction of opt: defaults its category/subcommand
// membership, validates the invariants the CORE ties to registration, and
// inserts it into every subcommand registry it belongs to. Concrete option
// constructors (Opt, List, Bits, Alias, EnumOpt) call this once, after
// applying their modifiers, mirroring the source's done()/addArgument()
// pair.
func Register(opt Option) error {
	if opt.IsGrouping() && len(opt.ArgName()) != 1 {
		return opt.Errorf("Grouping options must have a single-character name")
	}
	if opt.IsPositional() && opt.HasArgStr() {
		return opt.Errorf("Positional options must not have an argument name")
	}
	if opt.IsSink() && opt.HasArgStr() {
		return opt.Errorf("Sink options must not have an argument name")
	}
	if len(opt.Categories()) == 0 {
		opt.addCategory(GeneralCategory())
	}
	subs := opt.SubCommands()
	if len(subs) == 0 {
		subs = []*SubCommand{TopLevelSubCommand()}
		opt.addSubCommand(TopLevelSubCommand())
	}
	for _, sub := range subs {
		if err := sub.registry.register(opt); err != nil {
			return err
		}
	}
	opt.setFullyInitialized(true)
	return nil
}

// Unregister reverses Register for every subcommand opt belongs to, in
// strict last-in-first-out order per subcommand; a testing affordance.
func Unregister(opt Option) error {
	for _, sub := range opt.SubCommands() {
		if err := sub.registry.unregisterLast(opt); err != nil {
			return err
		}
	}
	return nil
}
