package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/urm/core"
)

// Case is one run of a named program.
type Case struct {
	Program string
	Inputs  []int
	Want    int

	// Diverges marks a case that is expected to exhaust the step limit.
	Diverges bool

	// MaxSteps overrides the report's step limit when nonzero.
	MaxSteps uint64
}

// CaseResult is the outcome of running a Case.
type CaseResult struct {
	Case
	Got   int
	Steps uint64
	Err   error
	OK    bool
}

// VerificationReport represents a complete verification report
type VerificationReport struct {
	ProgramCount int
	LintIssues   []Issue
	Results      []CaseResult
	Programs     map[string]core.Program

	style table.Style
}

// GenerateReport lints every program and runs every case in the functional
// simulator with at most maxSimSteps steps each. A zero maxSimSteps runs
// cases without a limit.
func GenerateReport(
	programs map[string]core.Program,
	cases []Case,
	maxSimSteps uint64,
) *VerificationReport {
	report := &VerificationReport{
		ProgramCount: len(programs),
		Programs:     programs,
		LintIssues:   RunLint(programs),
		style:        table.StyleDefault,
	}

	for _, c := range cases {
		report.Results = append(report.Results, runCase(programs, c, maxSimSteps))
	}

	return report
}

func runCase(programs map[string]core.Program, c Case, maxSteps uint64) CaseResult {
	res := CaseResult{Case: c}
	if c.MaxSteps > 0 {
		maxSteps = c.MaxSteps
	}

	p, ok := programs[c.Program]
	if !ok {
		res.Err = fmt.Errorf("unknown program %q", c.Program)
		return res
	}

	if c.Diverges && maxSteps == 0 {
		res.Err = errors.New("a diverging case needs a step limit")
		return res
	}

	fs := NewFunctionalSimulator(p)
	if err := fs.SetInputs(c.Inputs...); err != nil {
		res.Err = err
		return res
	}

	res.Err = fs.Run(maxSteps)
	res.Steps = fs.Steps()
	res.Got = fs.Result()

	if c.Diverges {
		res.OK = errors.Is(res.Err, core.ErrStepLimit)
	} else {
		res.OK = res.Err == nil && res.Got == c.Want
	}

	return res
}

// SetStyle sets the table style used by WriteReport.
func (r *VerificationReport) SetStyle(style table.Style) {
	r.style = style
}

// Passed reports whether there are no lint issues and every case passed.
func (r *VerificationReport) Passed() bool {
	if len(r.LintIssues) > 0 {
		return false
	}

	for _, res := range r.Results {
		if !res.OK {
			return false
		}
	}

	return true
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	fmt.Fprintln(w, r.programTable())
	fmt.Fprintln(w)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintln(w, r.issueTable())
	}
	fmt.Fprintln(w)

	if len(r.Results) > 0 {
		fmt.Fprintln(w, r.resultTable())
		fmt.Fprintln(w)
	}

	if r.Passed() {
		fmt.Fprintln(w, "✓ ALL CHECKS PASSED")
	} else {
		fmt.Fprintln(w, "⚠ VERIFICATION FAILED")
	}
}

func (r *VerificationReport) newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetStyle(r.style)
	t.SetTitle(title)
	return t
}

func (r *VerificationReport) programTable() string {
	names := make([]string, 0, len(r.Programs))
	for name := range r.Programs {
		names = append(names, name)
	}
	sort.Strings(names)

	t := r.newTable(fmt.Sprintf("Programs (%d)", r.ProgramCount))
	t.AppendHeader(table.Row{"Name", "Instructions", "Footprint"})
	for _, name := range names {
		p := r.Programs[name]
		t.AppendRow(table.Row{name, p.Len(), p.Footprint()})
	}

	return t.Render()
}

func (r *VerificationReport) issueTable() string {
	t := r.newTable(fmt.Sprintf("Lint Issues (%d)", len(r.LintIssues)))
	t.AppendHeader(table.Row{"Type", "Program", "At", "Message"})
	for _, issue := range r.LintIssues {
		t.AppendRow(table.Row{issue.Type, issue.Program, issue.At, issue.Message})
	}

	return t.Render()
}

func (r *VerificationReport) resultTable() string {
	t := r.newTable("Functional Simulation")
	t.AppendHeader(table.Row{"Program", "Inputs", "Want", "Got", "Steps", "Result"})
	for _, res := range r.Results {
		want := fmt.Sprint(res.Want)
		got := fmt.Sprint(res.Got)
		if res.Diverges {
			want = "diverges"
		}
		if res.Err != nil {
			got = res.Err.Error()
		}

		status := "PASS"
		if !res.OK {
			status = "FAIL"
		}

		t.AppendRow(table.Row{
			res.Program, formatInputs(res.Inputs), want, got, res.Steps, status,
		})
	}

	return t.Render()
}

func formatInputs(inputs []int) string {
	parts := make([]string, len(inputs))
	for i, v := range inputs {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
