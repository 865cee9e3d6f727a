package format

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/kiket/kiket/pkg/validate"
)

// Output formats
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// Severity colors
var (
	ErrorColor   = color.New(color.FgRed, color.Bold)
	WarningColor = color.New(color.FgYellow, color.Bold)
	SuccessColor = color.New(color.FgGreen, color.Bold)
	FileColor    = color.New(color.FgCyan)
	HintColor    = color.New(color.FgYellow, color.Italic)
)

// IssueFormatter renders a validation report for one project directory.
type IssueFormatter struct {
	ProjectDir    string
	OutputFormat  string
	Quiet         bool
	TerminalWidth int

	out io.Writer
}

// NewIssueFormatter creates a formatter writing to stdout.
func NewIssueFormatter(projectDir string) *IssueFormatter {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	return &IssueFormatter{
		ProjectDir:    projectDir,
		OutputFormat:  TextFormat,
		TerminalWidth: width,
		out:           os.Stdout,
	}
}

// SetOutput redirects the formatter, used in tests.
func (f *IssueFormatter) SetOutput(out io.Writer) {
	f.out = out
}

// jsonReport is the machine-readable shape emitted under --format json.
type jsonReport struct {
	Project  string           `json:"project"`
	Errors   int              `json:"errors"`
	Warnings int              `json:"warnings"`
	Issues   []validate.Issue `json:"issues"`
}

// PrintReport renders the full report and returns the number of errors and
// warnings it contained.
func (f *IssueFormatter) PrintReport(report *validate.Report, elapsed time.Duration) (errors, warnings int) {
	issues := report.Issues()
	errors = len(report.Errors())
	warnings = len(report.Warnings())

	if f.OutputFormat == JSONFormat {
		payload := jsonReport{
			Project:  f.ProjectDir,
			Errors:   errors,
			Warnings: warnings,
			Issues:   issues,
		}
		if payload.Issues == nil {
			payload.Issues = []validate.Issue{}
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			fmt.Fprintf(f.out, `{"error": %q}`+"\n", err.Error())
			return errors, warnings
		}
		fmt.Fprintln(f.out, string(data))
		return errors, warnings
	}

	if len(issues) > 0 {
		f.printHeader()
		for _, issue := range issues {
			f.printIssue(issue)
		}
		fmt.Fprintln(f.out)
	}

	f.printSummary(errors, warnings, elapsed)
	return errors, warnings
}

func (f *IssueFormatter) printHeader() {
	divider := strings.Repeat("─", f.TerminalWidth)
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, ErrorColor.Sprint("× VALIDATION ISSUES"), FileColor.Sprint(f.ProjectDir))
	fmt.Fprintln(f.out, divider)
	fmt.Fprintln(f.out)
}

func (f *IssueFormatter) printIssue(issue validate.Issue) {
	switch issue.Severity {
	case validate.SeverityWarning:
		fmt.Fprintf(f.out, "  %s %s\n", WarningColor.Sprint("warning:"), issue.Message)
	default:
		fmt.Fprintf(f.out, "  %s %s\n", ErrorColor.Sprint("error:"), issue.Message)
	}
}

func (f *IssueFormatter) printSummary(errors, warnings int, elapsed time.Duration) {
	if f.Quiet && errors == 0 {
		return
	}
	switch {
	case errors > 0:
		fmt.Fprintf(f.out, "%s %d %s, %d %s (in %s)\n",
			ErrorColor.Sprint("✗"),
			errors, plural(errors, "error", "errors"),
			warnings, plural(warnings, "warning", "warnings"),
			elapsed.Round(time.Millisecond))
	case warnings > 0:
		fmt.Fprintf(f.out, "%s manifest valid with %d %s (in %s)\n",
			WarningColor.Sprint("!"),
			warnings, plural(warnings, "warning", "warnings"),
			elapsed.Round(time.Millisecond))
	default:
		fmt.Fprintf(f.out, "%s manifest valid (in %s)\n",
			SuccessColor.Sprint("✓"), elapsed.Round(time.Millisecond))
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
