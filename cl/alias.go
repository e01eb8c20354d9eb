package cl

// Alias is a hidden-by-default forwarding option: every occurrence is
// routed to its target, and it copies the target's categories and
// subcommand membership at registration time.
type Alias struct {
	*optionBase
	target Option
}

// NewAlias declares name as an alias of target. Categories/subs must not be
// set independently (the CORE ties them to the target); hidden defaults to
// Hidden per the source's "aliases must themselves be hidden by default".
func NewAlias(name string, target Option) (*Alias, error) {
	if target == nil {
		return nil, (&optionBase{argName: name}).Errorf("cl.NewAlias: target must not be nil")
	}
	a := &Alias{target: target}
	a.optionBase = newOptionBase(Optional, Hidden)
	a.optionBase.argName = name
	a.optionBase.valueExpectedDefault = func() ValueExpected { return target.ValueExpectedFlag() }
	a.optionBase.setDefault = func() { target.SetDefault() }
	a.optionBase.handle = func(pos int, argName, raw string) error {
		return target.AddOccurrence(pos, target.ArgName(), raw, false)
	}

	a.optionBase.subs = target.SubCommands()
	a.optionBase.categories = target.Categories()

	if err := Register(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Target returns the option this alias forwards to.
func (a *Alias) Target() Option { return a.target }
