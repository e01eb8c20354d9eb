package cl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dzonerzy/cl/cliio"
)

type helpOptions struct {
	list     bool
	hidden   bool
	category string
	overview string
}

// PrintHelp renders the registered options of sub (plus the All scope),
// grouped by category, honoring hidden/really-hidden visibility and an
// optional category filter. This is a simple column printer, not a full
// layout engine, per the CORE spec's Non-goals: help text that would run
// past the terminal width is cut short with "…" rather than wrapped.
func PrintHelp(w io.Writer, m *cliio.Manager, sub *SubCommand, opts helpOptions) {
	if m == nil {
		m = cliio.New().WithOut(w)
	}
	if opts.overview != "" {
		fmt.Fprintln(w, opts.overview)
		fmt.Fprintln(w)
	}
	all := append(append([]Option{}, sub.registry.order...), AllSubCommand().registry.order...)

	grouped := map[string][]Option{}
	var order []string
	for _, opt := range all {
		if opt.HiddenFlag() == ReallyHidden {
			continue
		}
		if opt.HiddenFlag() == Hidden && !opts.hidden {
			continue
		}
		cats := opt.Categories()
		if len(cats) == 0 {
			cats = []*Category{GeneralCategory()}
		}
		for _, cat := range cats {
			if opts.category != "" && cat.Name() != opts.category {
				continue
			}
			if _, ok := grouped[cat.Name()]; !ok {
				order = append(order, cat.Name())
			}
			grouped[cat.Name()] = append(grouped[cat.Name()], opt)
		}
	}
	sort.Strings(order)

	for _, catName := range order {
		if !opts.list {
			fmt.Fprintf(w, "%s:\n", m.Bold(catName))
		}
		for _, opt := range grouped[catName] {
			printOptionLine(w, m, opt)
		}
		fmt.Fprintln(w)
	}
}

func printOptionLine(w io.Writer, m *cliio.Manager, opt Option) {
	label := optionLabel(opt)
	var name string
	switch {
	case label == "":
		name = fmt.Sprintf("<%s>", positionalName(opt))
	case opt.ArgName() == "":
		// exploded EnumOpt: label is already "high|low"-shaped; prefix each name.
		parts := strings.Split(label, "|")
		for i, p := range parts {
			parts[i] = "-" + p
		}
		name = strings.Join(parts, "|")
	default:
		name = "-" + label
	}
	if v := opt.ValueStr(); v != "" && opt.ValueExpectedFlag() != ValueDisallowed {
		name = fmt.Sprintf("%s=<%s>", name, v)
	}
	help := opt.HelpStr()
	width := m.Width()
	line := fmt.Sprintf("  %-24s %s", name, help)
	if width > 0 && len(line) > width {
		keep := width - 3 - max(24, len(name)) - 1
		help = help[:max(0, min(keep, len(help)))] + "…"
		line = fmt.Sprintf("  %-24s %s", name, help)
	}
	fmt.Fprintln(w, line)
}

// PrintOptions prints every option's current value; when all is false it
// only prints options whose value differs from their declared default,
// the "-print-options" / "-print-all-options" diffing behavior supplemented
// from the original source's printOptionDiff.
func PrintOptions(w io.Writer, sub *SubCommand, all bool) {
	for _, opt := range sub.registry.order {
		d, ok := opt.(diffable)
		if !ok {
			continue
		}
		if !all && !d.Changed() {
			continue
		}
		fmt.Fprintf(w, "  -%s = %s\n", optionLabel(opt), d.ValueString())
	}
}
