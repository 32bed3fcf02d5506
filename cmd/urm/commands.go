package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/sarchlab/urm/config"
	"github.com/sarchlab/urm/core"
	"github.com/sarchlab/urm/synth"
	"github.com/sarchlab/urm/verify"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
	exitStepLimit
)

// options holds the flags shared by every command.
type options struct {
	configPath   string
	programsPath string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML run configuration")
	fs.StringVar(&o.programsPath, "programs", "",
		"YAML program file (default: the built-in library)")
}

func (o *options) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}

	return config.Load(o.configPath)
}

func (o *options) loadPrograms() (map[string]core.Program, error) {
	if o.programsPath == "" {
		return synth.Library(), nil
	}

	return core.LoadProgramFileFromYAML(o.programsPath)
}

// setup loads the configuration and installs its logger as the default.
// The returned function closes the log file.
func (o *options) setup(stderr io.Writer) (config.Config, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, closer, err := cfg.NewLogger(stderr)
	if err != nil {
		return config.Config{}, nil, err
	}
	slog.SetDefault(logger)

	return cfg, func() { _ = closer.Close() }, nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// tableStyle colors tables only when w is a terminal.
func tableStyle(w io.Writer) table.Style {
	if f, ok := w.(*os.File); ok &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return table.StyleColoredBright
	}

	return table.StyleLight
}

func lookup(programs map[string]core.Program, name string) (core.Program, error) {
	p, ok := programs[name]
	if !ok {
		return core.Program{}, fmt.Errorf("unknown program %q", name)
	}

	return p, nil
}

func sortedNames(programs map[string]core.Program) []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "urm: %v\n", err)

	if errors.Is(err, core.ErrStepLimit) {
		return exitStepLimit
	}

	return exitFailed
}

func runCommand(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet("run", stderr)
	o.register(fs)
	timed := fs.Bool("timed", false, "run on the simulated machine instead of the functional simulator")
	dump := fs.Int("dump", 0, "print registers 1..n after a functional run")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: urm run [flags] NAME [INPUT...]")
		return exitUsage
	}

	cfg, closeLog, err := o.setup(stderr)
	if err != nil {
		return fail(stderr, err)
	}
	defer closeLog()

	programs, err := o.loadPrograms()
	if err != nil {
		return fail(stderr, err)
	}

	p, err := lookup(programs, fs.Arg(0))
	if err != nil {
		return fail(stderr, err)
	}

	inputs, err := core.ParseInputs(fs.Args()[1:])
	if err != nil {
		return fail(stderr, err)
	}

	if *timed {
		driver := cfg.NewDriver("Driver")
		driver.MapProgram(p)
		if err := driver.FeedIn(inputs); err != nil {
			return fail(stderr, err)
		}

		result, err := driver.Run()
		if err != nil {
			return fail(stderr, err)
		}

		fmt.Fprintln(stdout, result)

		return exitOK
	}

	fsim := verify.NewFunctionalSimulator(p)
	if err := fsim.SetInputs(inputs...); err != nil {
		return fail(stderr, err)
	}

	err = fsim.Run(cfg.MaxSteps)
	if *dump > 0 {
		fmt.Fprintln(stdout, core.FormatState(fsim.State(), *dump))
	}
	if err != nil {
		return fail(stderr, err)
	}

	slog.Info("Done", "Program", fs.Arg(0), "Steps", fsim.Steps())
	fmt.Fprintln(stdout, fsim.Result())

	return exitOK
}

func lintCommand(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet("lint", stderr)
	o.register(fs)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	_, closeLog, err := o.setup(stderr)
	if err != nil {
		return fail(stderr, err)
	}
	defer closeLog()

	programs, err := o.loadPrograms()
	if err != nil {
		return fail(stderr, err)
	}

	report := verify.GenerateReport(programs, nil, 0)
	report.SetStyle(tableStyle(stdout))
	report.WriteReport(stdout)

	if !report.Passed() {
		return exitFailed
	}

	return exitOK
}

func printCommand(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet("print", stderr)
	o.register(fs)
	asYAML := fs.Bool("yaml", false, "write a YAML program file instead of listings")
	out := fs.String("o", "", "with -yaml, write the program file here instead of stdout")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	_, closeLog, err := o.setup(stderr)
	if err != nil {
		return fail(stderr, err)
	}
	defer closeLog()

	programs, err := o.loadPrograms()
	if err != nil {
		return fail(stderr, err)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = sortedNames(programs)
	}

	selected := make(map[string]core.Program, len(names))
	for _, name := range names {
		p, err := lookup(programs, name)
		if err != nil {
			return fail(stderr, err)
		}
		selected[name] = p
	}

	if *asYAML && *out != "" {
		if err := core.WriteProgramFileYAML(*out, selected); err != nil {
			return fail(stderr, err)
		}

		return exitOK
	}

	if *asYAML {
		data, err := core.MarshalProgramFileYAML(selected)
		if err != nil {
			return fail(stderr, err)
		}
		_, _ = stdout.Write(data)

		return exitOK
	}

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "%s:\n", name)
		core.WriteListing(stdout, selected[name])
	}

	return exitOK
}

func demoCommand(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet("demo", stderr)
	o.register(fs)
	reportPath := fs.String("report", "", "also save the report to this file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, closeLog, err := o.setup(stderr)
	if err != nil {
		return fail(stderr, err)
	}
	defer closeLog()

	programs, err := o.loadPrograms()
	if err != nil {
		return fail(stderr, err)
	}

	report := verify.GenerateReport(programs, demoCases(programs), cfg.MaxSteps)
	report.SetStyle(tableStyle(stdout))
	report.WriteReport(stdout)

	if *reportPath != "" {
		report.SetStyle(table.StyleLight)
		if err := report.SaveReportToFile(*reportPath); err != nil {
			return fail(stderr, err)
		}
	}

	if !report.Passed() {
		return exitFailed
	}

	return exitOK
}

// demoCases returns the library checks whose programs are present.
func demoCases(programs map[string]core.Program) []verify.Case {
	all := []verify.Case{
		{Program: "one", Want: 1},
		{Program: "add", Inputs: []int{3, 4}, Want: 7},
		{Program: "mul", Inputs: []int{3, 4}, Want: 12},
		{Program: "multiply", Inputs: []int{3, 5}, Want: 15},
		{Program: "pred", Inputs: []int{0}, Want: 0},
		{Program: "sub", Inputs: []int{3, 5}, Want: 0},
		{Program: "fact", Inputs: []int{7}, Want: 5040, MaxSteps: 5_000_000_000},
		{Program: "div", Inputs: []int{24, 3}, Want: 8},
		{Program: "div", Inputs: []int{5, 0}, Diverges: true, MaxSteps: 1_000_000},
	}

	var cases []verify.Case
	for _, c := range all {
		if _, ok := programs[c.Program]; ok {
			cases = append(cases, c)
		}
	}

	return cases
}
