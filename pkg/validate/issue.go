// Package validate implements the offline extension manifest validation
// engine behind the lint, doctor, validate, and wizard preview commands.
//
// Each validator is a pure function from a manifest (plus, for two of them,
// a project layout view) to a list of issues. Issues carry one of two
// severities: errors block publishing, warnings are advisory. The engine
// never fails for data problems; every malformed input becomes an issue.
package validate

import "fmt"

// Severity classifies a validation issue.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns the severity as it appears in rendered output.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// MarshalJSON renders the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Issue is a single validation finding. Immutable once created.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func errorf(format string, a ...interface{}) Issue {
	return Issue{Severity: SeverityError, Message: fmt.Sprintf(format, a...)}
}

func warnf(format string, a ...interface{}) Issue {
	return Issue{Severity: SeverityWarning, Message: fmt.Sprintf(format, a...)}
}

// Report collects the issues of one engine run. Issue order is part of the
// contract: validator order first, then document order, then rule order.
type Report struct {
	issues []Issue
}

// Append adds issues to the report preserving their order.
func (r *Report) Append(issues ...Issue) {
	r.issues = append(r.issues, issues...)
}

// Issues returns every issue in stable order.
func (r *Report) Issues() []Issue {
	return r.issues
}

// Errors returns only the error-severity issues, in order.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns only the warning-severity issues, in order.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

// HasErrors reports whether any error-severity issue exists.
func (r *Report) HasErrors() bool {
	for _, issue := range r.issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
