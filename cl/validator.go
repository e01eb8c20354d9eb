package cl

import "fmt"

// Validate runs the post-token-stream checks section 4.G describes:
// required-occurrence constraints, positional arity, and consume-after
// preconditions, for every option in the active subcommand plus the All
// scope.
func Validate(sub *SubCommand) error {
	seen := map[Option]bool{}
	check := func(opt Option) error {
		if seen[opt] {
			return nil
		}
		seen[opt] = true
		switch opt.OccurrencesFlag() {
		case Required, OneOrMore:
			if opt.NumOccurrences() == 0 {
				name := optionLabel(opt)
				if name == "" {
					name = "<positional>"
				}
				return &ParseError{Kind: MissingRequired, Option: name, Message: "must be specified"}
			}
		case ConsumeAfter:
			if len(sub.registry.positionals) == 0 {
				return &ParseError{Kind: Configuration, Option: optionLabel(opt), Message: "ConsumeAfter is meaningless without at least one positional"}
			}
		}
		return nil
	}

	for _, opt := range sub.registry.order {
		if err := check(opt); err != nil {
			return err
		}
	}
	for _, opt := range AllSubCommand().registry.order {
		if err := check(opt); err != nil {
			return err
		}
	}

	for _, opt := range sub.registry.positionals {
		if flag := opt.OccurrencesFlag(); (flag == Required || flag == OneOrMore) && opt.NumOccurrences() == 0 {
			return &ParseError{Kind: MissingRequired, Option: fmt.Sprintf("<%s>", positionalName(opt)), Message: "must be specified"}
		}
	}
	return nil
}

func positionalName(opt Option) string {
	if opt.HelpStr() != "" {
		return opt.HelpStr()
	}
	return "positional"
}
