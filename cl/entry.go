package cl

import (
	"fmt"
	"io"
	"os"

	"github.com/dzonerzy/cl/cliio"
	"github.com/dzonerzy/cl/parsers"
)

// Config carries the knobs ParseCommandLineOptions exposes over the parse
// itself: overview text for -help, where diagnostics go, the env-var name
// consulted for pre-argv tokens, and the double-dash-only long-option mode.
type Config struct {
	OverviewText             string
	ProgramName              string
	Version                  string
	ErrorSink                func(error)
	EnvVar                   string
	LongOptionsUseDoubleDash bool
	Debug                    bool
	Out                      io.Writer
	Err                      io.Writer
	ExitCodes                *ExitCodeManager
}

func (c *Config) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Config) err() io.Writer {
	if c.Err != nil {
		return c.Err
	}
	return os.Stderr
}

func (c *Config) exitCodes() *ExitCodeManager {
	if c.ExitCodes != nil {
		return c.ExitCodes
	}
	return NewExitCodeManager()
}

func (c *Config) io() *cliio.Manager {
	return cliio.New().WithOut(c.out()).WithErr(c.err())
}

func (c *Config) progName(argv []string) string {
	if c.ProgramName != "" {
		return c.ProgramName
	}
	if len(argv) > 0 {
		return argv[0]
	}
	return "prog"
}

var builtinHelp *Opt[string]
var builtinHelpHidden *Opt[bool]
var builtinHelpList *Opt[bool]
var builtinHelpListHidden *Opt[bool]
var builtinVersion *Opt[bool]
var builtinPrintOptions *Opt[bool]
var builtinPrintAllOptions *Opt[bool]

func registerBuiltins() {
	if _, ok := TopLevelSubCommand().registry.lookup("help"); ok {
		return
	}
	builtinHelp, _ = NewOpt("help", parsers.String(),
		Desc[string]("Display available options"),
		HiddenOpt[string](NotHidden),
		ValueExpectedOpt[string](ValueOptional),
	)
	aliasH, _ := NewAlias("h", builtinHelp)
	_ = aliasH
	builtinHelpHidden, _ = NewOpt("help-hidden", parsers.Bool(), Desc[bool]("Display all options, including hidden ones"))
	builtinHelpList, _ = NewOpt("help-list", parsers.Bool(), Desc[bool]("Display list of available options (do not describe categories)"))
	builtinHelpListHidden, _ = NewOpt("help-list-hidden", parsers.Bool(), Desc[bool]("Display list of all options, including hidden ones"))
	builtinVersion, _ = NewOpt("version", parsers.Bool(), Desc[bool]("Display the version of this program"))
	builtinPrintOptions, _ = NewOpt("print-options", parsers.Bool(), Desc[bool]("Print non-default valued options"))
	builtinPrintAllOptions, _ = NewOpt("print-all-options", parsers.Bool(), Desc[bool]("Print all option values"))
}

// ParseCommandLineOptions is the CORE's external entry point. It returns
// true on success. If cfg.ErrorSink is set, it returns false on failure
// without terminating; otherwise it prints the diagnostic to cfg.err() and
// terminates the process with a nonzero exit code.
func ParseCommandLineOptions(argv []string, cfg *Config) bool {
	if cfg == nil {
		cfg = &Config{}
	}
	registerBuiltins()

	dispatcher := NewDispatcher()
	if cfg.Debug {
		logger := cliio.NewLogger(cfg.io())
		dispatcher.SetTrace(func(s string) { logger.Logf(cliio.Debug, "%s", s) })
	}

	resolved, err := resolveArgv(cfg.EnvVar, argv)
	if err == nil {
		var sub *SubCommand
		sub, err = dispatcher.Dispatch(resolved, cfg)
		if err == nil {
			if handled, code := handleBuiltins(cfg, sub); handled {
				os.Exit(code)
			}
			err = Validate(sub)
		}
	}

	if err == nil {
		return true
	}
	return fail(cfg, err)
}

func fail(cfg *Config, err error) bool {
	if cfg.ErrorSink != nil {
		cfg.ErrorSink(err)
		return false
	}
	m := cfg.io()
	fmt.Fprintf(cfg.err(), "%s: %s\n", cfg.progName(nil), m.Red(err.Error()))
	fmt.Fprintf(cfg.err(), "Try '-help' for more information.\n")
	os.Exit(cfg.exitCodes().Resolve(err))
	return false
}

func handleBuiltins(cfg *Config, sub *SubCommand) (bool, int) {
	switch {
	case builtinVersion != nil && builtinVersion.Get():
		fmt.Fprintf(cfg.out(), "%s version %s\n", cfg.progName(nil), cfg.Version)
		return true, ExitSuccess
	case builtinHelpListHidden != nil && builtinHelpListHidden.Get():
		PrintHelp(cfg.out(), cfg.io(), sub, helpOptions{list: true, hidden: true, overview: cfg.OverviewText})
		return true, ExitSuccess
	case builtinHelpList != nil && builtinHelpList.Get():
		PrintHelp(cfg.out(), cfg.io(), sub, helpOptions{list: true, overview: cfg.OverviewText})
		return true, ExitSuccess
	case builtinHelpHidden != nil && builtinHelpHidden.Get():
		PrintHelp(cfg.out(), cfg.io(), sub, helpOptions{hidden: true, overview: cfg.OverviewText})
		return true, ExitSuccess
	case builtinHelp != nil && builtinHelp.NumOccurrences() > 0:
		PrintHelp(cfg.out(), cfg.io(), sub, helpOptions{category: builtinHelp.Get(), overview: cfg.OverviewText})
		return true, ExitSuccess
	case builtinPrintAllOptions != nil && builtinPrintAllOptions.Get():
		PrintOptions(cfg.out(), sub, true)
		return true, ExitSuccess
	case builtinPrintOptions != nil && builtinPrintOptions.Get():
		PrintOptions(cfg.out(), sub, false)
		return true, ExitSuccess
	}
	return false, ExitSuccess
}
