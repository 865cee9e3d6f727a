package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardNoSteps(t *testing.T) {
	assert.Empty(t, WizardSteps(mustManifest(t, validManifest)))
	assert.Empty(t, WizardSteps(mustManifest(t, "extension:\n  setup: []\n")))
}

func TestWizardUnknownStepKind(t *testing.T) {
	content := `
extension:
  setup:
    - deploy:
        target: prod
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `step 1: invalid step type "deploy"`)
}

func TestWizardZeroKeyStep(t *testing.T) {
	content := `
extension:
  setup:
    - {}
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "invalid step type")
}

func TestWizardMultiKeyStep(t *testing.T) {
	content := `
extension:
  setup:
    - secrets:
        fields:
          - key: api_key
      info:
        title: oops
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "step 1 must have exactly one key, found 2")
}

func TestWizardSecretsEmptyStep(t *testing.T) {
	content := `
extension:
  setup:
    - secrets: {}
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "must define fields or collect")
}

func TestWizardConfigureEmptyStepIsWarning(t *testing.T) {
	content := `
extension:
  setup:
    - configure: {}
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "neither fields nor collect")
}

func TestWizardFieldMissingKey(t *testing.T) {
	content := `
extension:
  setup:
    - secrets:
        fields:
          - label: API key
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "missing required 'key'")
}

func TestWizardObtainOAuthRequiresBothURLs(t *testing.T) {
	content := `
extension:
  setup:
    - secrets:
        fields:
          - key: token
            obtain:
              type: oauth2
`
	issues := WizardSteps(mustManifest(t, content))
	// Each missing endpoint URL is its own error.
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "requires authorization_url")
	assert.Contains(t, issues[1].Message, "requires token_url")
	for _, issue := range issues {
		assert.Equal(t, SeverityError, issue.Severity)
	}
}

func TestWizardObtainOAuthOneURLMissing(t *testing.T) {
	content := `
extension:
  setup:
    - secrets:
        fields:
          - key: token
            obtain:
              type: oauth2
              authorization_url: https://auth.example.com/authorize
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "requires token_url")
}

func TestWizardObtainInvalidType(t *testing.T) {
	content := `
extension:
  setup:
    - secrets:
        fields:
          - key: token
            obtain:
              type: carrier-pigeon
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `invalid obtain type "carrier-pigeon"`)
}

func TestWizardObtainNonOAuthNeedsNoURLs(t *testing.T) {
	content := `
extension:
  setup:
    - secrets:
        fields:
          - key: token
            obtain:
              type: api_key
              secret: true
`
	assert.Empty(t, WizardSteps(mustManifest(t, content)))
}

func TestWizardCollectReferences(t *testing.T) {
	content := `
extension:
  configuration:
    base_url:
      type: text
  setup:
    - secrets:
        collect:
          - base_url
          - missing_key
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `undeclared configuration key "missing_key"`)
}

func TestWizardConfigureShowWhen(t *testing.T) {
	content := `
extension:
  setup:
    - configure:
        fields:
          - key: mode
            type: text
          - key: custom_url
            showWhen:
              field: mode
          - key: broken
            showWhen:
              field: nonexistent
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `references unknown field "nonexistent"`)
}

func TestWizardConfigureSelectRequiresOptions(t *testing.T) {
	content := `
extension:
  setup:
    - configure:
        fields:
          - key: region
            type: select
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "requires non-empty options")
}

func TestWizardConfigureDynamicTypeIgnoresOptions(t *testing.T) {
	content := `
extension:
  setup:
    - configure:
        fields:
          - key: target
            type: milestone
            options:
              - v1
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "static options will be ignored")
}

func TestWizardTestStepWithoutAction(t *testing.T) {
	content := `
extension:
  setup:
    - test: {}
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "no-op")
}

func TestWizardInfoStep(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		issues := WizardSteps(mustManifest(t, "extension:\n  setup:\n    - info: {}\n"))
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityWarning, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "neither content nor title")
	})
	t.Run("bad link", func(t *testing.T) {
		content := `
extension:
  setup:
    - info:
        title: Getting started
        links:
          - url: https://docs.example.com
          - url: https://docs.example.com/guide
            label: Guide
`
		issues := WizardSteps(mustManifest(t, content))
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityError, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "requires both url and label")
	})
}

func TestWizardLegacyTopLevelSetup(t *testing.T) {
	content := `
setup:
  - test: {}
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "step 1 (test)")
}

func TestWizardStepPositionsInMessages(t *testing.T) {
	content := `
extension:
  setup:
    - info:
        title: Welcome
        content: Hello
    - test: {}
    - bogus: {}
`
	issues := WizardSteps(mustManifest(t, content))
	require.Len(t, issues, 2)
	assert.Contains(t, issues[0].Message, "step 2")
	assert.Contains(t, issues[1].Message, "step 3")
}
