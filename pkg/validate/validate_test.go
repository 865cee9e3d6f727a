package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmptyManifest(t *testing.T) {
	// A manifest carrying nothing but model_version: everything else is
	// reported, nothing crashes.
	report := Run(mustManifest(t, "model_version: \"1.0\"\n"), emptyLayout())

	errs := messages(report.Errors())
	assert.Contains(t, errs[0], "extension block is required")
	assert.Contains(t, errs[1], "extension.id is required")
	assert.Contains(t, errs[2], "extension.name is required")
	assert.Contains(t, errs[3], "extension.delivery is required")
	require.Len(t, errs, 4)

	warns := messages(report.Warnings())
	assert.Contains(t, warns[0], "no test directory")
	assert.Contains(t, warns[1], "README.md")
	assert.Contains(t, warns[2], "sdk is recommended")
	require.Len(t, warns, 3)
}

func TestRunWebhookGuardTimeout(t *testing.T) {
	content := `
model_version: "1.0"
extension:
  id: com.example.webhook-guard
  name: Webhook Guard
  sdk: go
  delivery: http
  callback:
    url: https://hooks.example.com/guard
    timeout: 50
`
	report := Run(mustManifest(t, content), tidyLayout())
	errs := report.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "timeout must be between 100 and 60000ms")
	assert.Empty(t, report.Warnings())
}

func TestRunIdempotent(t *testing.T) {
	content := `
extension:
  id: Bad_Id
  name: X
  delivery: smoke-signal
  setup:
    - secrets: {}
    - bogus: {}
  output_fields:
    Verdict: {}
`
	m := mustManifest(t, content)
	layout := emptyLayout()

	first := Run(m, layout).Issues()
	second := Run(m, layout).Issues()
	assert.Equal(t, first, second)
}

func TestRunOrderingIsValidatorThenDocumentOrder(t *testing.T) {
	content := `
extension:
  id: com.example.demo
  name: Demo
  sdk: go
  delivery: internal
  setup:
    - test: {}
  output_fields:
    Verdict:
      label: Verdict
`
	layout := schemaLayout(schemaFile("metrics", "module: metrics\ntables:\n  samples: {}\n"))
	report := Run(mustManifest(t, content), layout)

	msgs := messages(report.Issues())
	require.Len(t, msgs, 4)
	// structural, then wizard, then custom-data, then output fields.
	assert.Contains(t, msgs[0], "model_version")
	assert.Contains(t, msgs[1], "step 1 (test)")
	assert.Contains(t, msgs[2], `"metrics" is defined but not declared`)
	assert.Contains(t, msgs[3], `"Verdict"`)
}

func TestReportPartitions(t *testing.T) {
	report := &Report{}
	report.Append(errorf("e1"), warnf("w1"), errorf("e2"))

	assert.True(t, report.HasErrors())
	assert.Equal(t, []string{"e1", "e2"}, messages(report.Errors()))
	assert.Equal(t, []string{"w1"}, messages(report.Warnings()))
	assert.Len(t, report.Issues(), 3)

	empty := &Report{}
	assert.False(t, empty.HasErrors())
	assert.Empty(t, empty.Issues())
}

func TestRunDir(t *testing.T) {
	root := t.TempDir()
	manifest := `
model_version: "1.0"
extension:
  id: com.example.webhook-guard
  name: Webhook Guard
  sdk: go
  delivery: internal
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "extension.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tests"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# guard"), 0o644))

	report, err := RunDir(root)
	require.NoError(t, err)
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Issues())
}

func TestRunDirMissingManifest(t *testing.T) {
	_, err := RunDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extension manifest found")
}

func TestRunDirUnparseableManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "extension.yaml"), []byte("extension: [unclosed"), 0o644))

	_, err := RunDir(root)
	require.Error(t, err)
}
