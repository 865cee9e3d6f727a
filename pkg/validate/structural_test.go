package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `
model_version: "1.0"
extension:
  id: com.example.webhook-guard
  name: Webhook Guard
  version: 1.2.0
  sdk: go
  delivery: http
  callback:
    url: https://hooks.example.com/guard
    timeout: 5000
`

func TestStructuralValidManifest(t *testing.T) {
	issues := Structural(mustManifest(t, validManifest), tidyLayout())
	assert.Empty(t, issues)
}

func TestStructuralMissingIdentity(t *testing.T) {
	// Missing id and name must always be exactly two errors, regardless of
	// the rest of the manifest.
	manifests := []string{
		"model_version: \"1.0\"\nextension:\n  delivery: internal\n",
		"model_version: \"1.0\"\nextension:\n  delivery: http\n  callback: {url: https://x.test}\n",
		"model_version: \"1.0\"\n",
	}
	for i, content := range manifests {
		t.Run(fmt.Sprintf("manifest_%d", i), func(t *testing.T) {
			issues := Structural(mustManifest(t, content), tidyLayout())
			var identityErrors []Issue
			for _, issue := range issues {
				if issue.Severity == SeverityError &&
					(strings.Contains(issue.Message, "extension.id") || strings.Contains(issue.Message, "extension.name")) {
					identityErrors = append(identityErrors, issue)
				}
			}
			assert.Len(t, identityErrors, 2)
		})
	}
}

func TestStructuralModelVersionRecommended(t *testing.T) {
	issues := Structural(mustManifest(t, "extension: {id: com.x.y, name: X, delivery: internal, sdk: go}"), tidyLayout())
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "model_version")
}

func TestStructuralIDStyle(t *testing.T) {
	tests := []struct {
		id       string
		wantWarn bool
	}{
		{"com.example.guard", false},
		{"webhook-guard", false},
		{"a2", false},
		{"Webhook_Guard", true},
		{"9lives", true},
		{"x", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			content := fmt.Sprintf("model_version: \"1\"\nextension: {id: %q, name: X, delivery: internal, sdk: go}", tt.id)
			issues := Structural(mustManifest(t, content), tidyLayout())
			found := false
			for _, issue := range issues {
				if strings.Contains(issue.Message, "reverse-DNS") {
					found = true
					assert.Equal(t, SeverityWarning, issue.Severity)
				}
			}
			assert.Equal(t, tt.wantWarn, found)
		})
	}
}

func TestStructuralDeliveryEnum(t *testing.T) {
	content := "model_version: \"1\"\nextension: {id: com.x.y, name: X, delivery: carrier-pigeon, sdk: go}"
	issues := Structural(mustManifest(t, content), tidyLayout())
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `"carrier-pigeon"`)
}

func TestStructuralDeliveryNotAString(t *testing.T) {
	content := "model_version: \"1\"\nextension: {id: com.x.y, name: X, sdk: go, delivery: {mode: http}}"
	issues := Structural(mustManifest(t, content), tidyLayout())
	require.Len(t, issues, 1)
	assert.Equal(t, "extension.delivery must be a string", issues[0].Message)
}

func TestStructuralCallbackTimeoutBounds(t *testing.T) {
	tests := []struct {
		timeout int
		wantErr bool
	}{
		{99, true},
		{100, false},
		{60000, false},
		{60001, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("timeout_%d", tt.timeout), func(t *testing.T) {
			content := fmt.Sprintf(`
model_version: "1"
extension:
  id: com.x.y
  name: X
  sdk: go
  delivery: http
  callback:
    url: https://x.test
    timeout: %d
`, tt.timeout)
			issues := Structural(mustManifest(t, content), tidyLayout())
			if tt.wantErr {
				require.Len(t, issues, 1)
				assert.Contains(t, issues[0].Message, "between 100 and 60000ms")
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}

func TestStructuralHTTPDeliveryRequiresCallback(t *testing.T) {
	content := "model_version: \"1\"\nextension: {id: com.x.y, name: X, sdk: go, delivery: http}"
	issues := Structural(mustManifest(t, content), tidyLayout())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "callback must be a mapping")
}

func TestStructuralCallbackURLRequired(t *testing.T) {
	content := `
model_version: "1"
extension:
  id: com.x.y
  name: X
  sdk: go
  delivery: http
  callback:
    timeout: 5000
`
	issues := Structural(mustManifest(t, content), tidyLayout())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "callback.url is required")
}

func TestStructuralProjectLayoutWarnings(t *testing.T) {
	issues := Structural(mustManifest(t, validManifest), emptyLayout())
	msgs := messages(issues)
	require.Len(t, issues, 2)
	assert.Contains(t, msgs[0], "no test directory")
	assert.Contains(t, msgs[1], "README.md")
	for _, issue := range issues {
		assert.Equal(t, SeverityWarning, issue.Severity)
	}
}

func TestStructuralSDK(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		content := "model_version: \"1\"\nextension: {id: com.x.y, name: X, delivery: internal, sdk: cobol}"
		issues := Structural(mustManifest(t, content), tidyLayout())
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityError, issues[0].Severity)
		assert.Contains(t, issues[0].Message, `"cobol"`)
	})
	t.Run("absent", func(t *testing.T) {
		content := "model_version: \"1\"\nextension: {id: com.x.y, name: X, delivery: internal}"
		issues := Structural(mustManifest(t, content), tidyLayout())
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityWarning, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "sdk is recommended")
	})
}
