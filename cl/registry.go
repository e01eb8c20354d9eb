package cl

import "fmt"

// Registry holds the option tables for one subcommand scope: a name map,
// ordered positionals, sinks, and the single consume-after slot.
type Registry struct {
	byName       map[string]Option
	positionals  []Option
	sinks        []Option
	consumeAfter Option
	// registration order across all kinds, for deterministic -help output
	// and for unregister_last's reverse-order check.
	order []Option
}

func newRegistry() *Registry {
	return &Registry{byName: make(map[string]Option)}
}

// register adds opt to this registry, honoring the CORE's placement rules:
// named options go into by_name, positionals/sinks/consume-after go into
// their own lists, and any extra option names (e.g. an exploded EnumOpt's
// literal names, on an option with no ArgStr) go into by_name as well.
func (r *Registry) register(opt Option) error {
	if opt.IsConsumeAfter() {
		if r.consumeAfter != nil {
			return opt.Errorf("two ConsumeAfter options registered in the same subcommand")
		}
		r.consumeAfter = opt
	}
	if opt.IsPositional() {
		r.positionals = append(r.positionals, opt)
	}
	if opt.IsSink() {
		r.sinks = append(r.sinks, opt)
	}
	if opt.HasArgStr() {
		if _, dup := r.byName[opt.ArgName()]; dup {
			return opt.Errorf("option %q already registered", opt.ArgName())
		}
		r.byName[opt.ArgName()] = opt
	}
	for _, extra := range opt.ExtraOptionNames() {
		if _, dup := r.byName[extra]; dup {
			return opt.Errorf("option %q already registered", extra)
		}
		r.byName[extra] = opt
	}
	r.order = append(r.order, opt)
	return nil
}

// unregisterLast removes opt only if it is the most recently registered
// entry in this registry; a test-isolation affordance.
func (r *Registry) unregisterLast(opt Option) error {
	if len(r.order) == 0 || r.order[len(r.order)-1] != opt {
		return fmt.Errorf("cl: unregister_last called out of order")
	}
	r.order = r.order[:len(r.order)-1]
	if opt.HasArgStr() {
		delete(r.byName, opt.ArgName())
	}
	for _, extra := range opt.ExtraOptionNames() {
		delete(r.byName, extra)
	}
	if opt.IsPositional() && len(r.positionals) > 0 && r.positionals[len(r.positionals)-1] == opt {
		r.positionals = r.positionals[:len(r.positionals)-1]
	}
	if opt.IsSink() && len(r.sinks) > 0 && r.sinks[len(r.sinks)-1] == opt {
		r.sinks = r.sinks[:len(r.sinks)-1]
	}
	if r.consumeAfter == opt {
		r.consumeAfter = nil
	}
	return nil
}

func (r *Registry) resetAll() {
	for _, opt := range r.order {
		opt.SetDefault()
	}
}

// lookup resolves name within this registry, falling back to the All
// sentinel's registry, which the CORE spec requires to be consulted at
// lookup time rather than copied into every subcommand.
func (r *Registry) lookup(name string) (Option, bool) {
	if opt, ok := r.byName[name]; ok {
		return opt, true
	}
	if r != AllSubCommand().registry {
		if opt, ok := AllSubCommand().registry.byName[name]; ok {
			return opt, true
		}
	}
	return nil, false
}

// Options returns every option in registration order, not including the
// All-scoped options (callers combine explicitly when needed).
func (r *Registry) Options() []Option { return r.order }
