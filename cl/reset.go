package cl

// ResetAllOptionOccurrences returns every registered option (in every
// subcommand, plus All) to its declared default and clears occurrence
// counters, without touching registration. The Dispatcher calls this at
// the start of every Dispatch; callers may also invoke it directly between
// tests.
func ResetAllOptionOccurrences() {
	topLevel.Get().registry.resetAll()
	allSub.Get().registry.resetAll()
	for _, sc := range subcommands.Get() {
		sc.registry.resetAll()
	}
}

// ResetCommandLineParser clears every registry (name maps, positionals,
// sinks, consume-after slots) across TopLevel, All, and every named
// subcommand, and forgets named subcommands entirely. Subsequent parses
// start from an empty world; used between independent test cases that each
// declare their own option set.
func ResetCommandLineParser() {
	topLevel.Get().reset()
	allSub.Get().reset()
	for name := range subcommands.Get() {
		delete(subcommands.Get(), name)
	}
}
