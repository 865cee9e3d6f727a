package format

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiket/kiket/pkg/validate"
)

func sampleReport() *validate.Report {
	report := &validate.Report{}
	report.Append(
		validate.Issue{Severity: validate.SeverityError, Message: "extension.id is required"},
		validate.Issue{Severity: validate.SeverityWarning, Message: "no README.md found"},
	)
	return report
}

func TestPrintReportText(t *testing.T) {
	var buf bytes.Buffer
	f := NewIssueFormatter("./demo")
	f.SetOutput(&buf)

	errors, warnings := f.PrintReport(sampleReport(), 12*time.Millisecond)
	assert.Equal(t, 1, errors)
	assert.Equal(t, 1, warnings)

	out := buf.String()
	assert.Contains(t, out, "VALIDATION ISSUES")
	assert.Contains(t, out, "extension.id is required")
	assert.Contains(t, out, "no README.md found")
	assert.Contains(t, out, "1 error, 1 warning")
}

func TestPrintReportCleanText(t *testing.T) {
	var buf bytes.Buffer
	f := NewIssueFormatter("./demo")
	f.SetOutput(&buf)

	errors, warnings := f.PrintReport(&validate.Report{}, time.Millisecond)
	assert.Zero(t, errors)
	assert.Zero(t, warnings)
	assert.Contains(t, buf.String(), "manifest valid")
	assert.NotContains(t, buf.String(), "VALIDATION ISSUES")
}

func TestPrintReportQuietSuppressesSuccess(t *testing.T) {
	var buf bytes.Buffer
	f := NewIssueFormatter("./demo")
	f.SetOutput(&buf)
	f.Quiet = true

	f.PrintReport(&validate.Report{}, time.Millisecond)
	assert.Empty(t, buf.String())
}

func TestPrintReportJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewIssueFormatter("./demo")
	f.SetOutput(&buf)
	f.OutputFormat = JSONFormat

	f.PrintReport(sampleReport(), time.Millisecond)

	var payload struct {
		Project  string `json:"project"`
		Errors   int    `json:"errors"`
		Warnings int    `json:"warnings"`
		Issues   []struct {
			Severity string `json:"severity"`
			Message  string `json:"message"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "./demo", payload.Project)
	assert.Equal(t, 1, payload.Errors)
	assert.Equal(t, 1, payload.Warnings)
	require.Len(t, payload.Issues, 2)
	assert.Equal(t, "error", payload.Issues[0].Severity)
	assert.Equal(t, "warning", payload.Issues[1].Severity)
}

func TestPrintReportJSONEmptyIssuesIsArray(t *testing.T) {
	var buf bytes.Buffer
	f := NewIssueFormatter("./demo")
	f.SetOutput(&buf)
	f.OutputFormat = JSONFormat

	f.PrintReport(&validate.Report{}, time.Millisecond)
	assert.Contains(t, buf.String(), `"issues": []`)
}
