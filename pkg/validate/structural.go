package validate

import (
	"github.com/kiket/kiket/pkg/types"
)

// testDirNames are the directory names that satisfy the test-layout check.
var testDirNames = []string{"test", "tests", "spec"}

// Structural checks the manifest's top-level identity and delivery
// configuration. Pure function of the manifest and the layout view; rule
// order is fixed and part of the engine's ordering contract.
func Structural(m *types.Manifest, layout ProjectLayout) []Issue {
	var issues []Issue

	if m.Root().Get("model_version").IsAbsent() {
		issues = append(issues, warnf("model_version is recommended (e.g. model_version: \"1.0\")"))
	}

	ext := m.Extension()
	if !ext.IsMapping() {
		issues = append(issues, errorf("extension block is required and must be a mapping"))
	}

	if ext.Get("id").IsAbsent() {
		issues = append(issues, errorf("extension.id is required"))
	}
	if ext.Get("name").IsAbsent() {
		issues = append(issues, errorf("extension.name is required"))
	}
	if id, ok := ext.Get("id").Str(); ok && !identifierRe.MatchString(id) {
		issues = append(issues, warnf("extension.id %q should be lowercase reverse-DNS style (e.g. com.example.webhook-guard)", id))
	}

	delivery := ext.Get("delivery")
	switch {
	case delivery.IsAbsent():
		issues = append(issues, errorf("extension.delivery is required"))
	case !delivery.IsScalar():
		issues = append(issues, errorf("extension.delivery must be a string"))
	default:
		mode, _ := delivery.Str()
		if !DeliveryModes[mode] {
			issues = append(issues, errorf("extension.delivery %q is invalid (must be one of: %s)", mode, enumList(DeliveryModes)))
		}
		if mode == "http" {
			issues = append(issues, checkCallback(ext.Get("callback"))...)
		}
	}

	if !hasTestDir(layout) {
		issues = append(issues, warnf("no test directory found (expected one of: test, tests, spec)"))
	}
	if !layout.FileExists("README.md") {
		issues = append(issues, warnf("no README.md found"))
	}

	sdk := ext.Get("sdk")
	if sdk.IsAbsent() {
		issues = append(issues, warnf("extension.sdk is recommended for deployment"))
	} else if name := sdk.StringOr(""); !SupportedSDKs[name] {
		issues = append(issues, errorf("extension.sdk %q is not supported (must be one of: %s)", name, enumList(SupportedSDKs)))
	}

	return issues
}

// checkCallback validates the callback block required by http delivery.
func checkCallback(callback *types.ConfigNode) []Issue {
	if !callback.IsMapping() {
		return []Issue{errorf("extension.callback must be a mapping when delivery is http")}
	}

	var issues []Issue
	if callback.Get("url").IsAbsent() {
		issues = append(issues, errorf("extension.callback.url is required when delivery is http"))
	}
	if timeout := callback.Get("timeout"); !timeout.IsAbsent() {
		if v, ok := timeout.Int(); !ok || v < callbackTimeoutMin || v > callbackTimeoutMax {
			issues = append(issues, errorf("extension.callback.timeout must be between %d and %dms", callbackTimeoutMin, callbackTimeoutMax))
		}
	}
	return issues
}

func hasTestDir(layout ProjectLayout) bool {
	for _, name := range testDirNames {
		if layout.DirExists(name) {
			return true
		}
	}
	return false
}
