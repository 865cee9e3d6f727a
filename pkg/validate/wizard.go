package validate

import (
	"github.com/kiket/kiket/pkg/types"
)

// WizardSteps validates the setup wizard sequence. Returns an empty list
// when the manifest declares no steps. Steps are reported by their 1-based
// position; a step with anything other than exactly one top-level key is
// malformed and checked no further.
func WizardSteps(m *types.Manifest) []Issue {
	steps := m.Steps()
	if len(steps) == 0 {
		return nil
	}

	configKeys := m.ConfigurationKeys()

	var issues []Issue
	for _, step := range steps {
		switch {
		case step.KeyCount > 1:
			issues = append(issues, errorf("setup step %d must have exactly one key, found %d", step.Position, step.KeyCount))
			continue
		case step.Kind == types.StepUnknown:
			issues = append(issues, errorf("setup step %d: invalid step type %q", step.Position, step.RawKind))
			continue
		}

		switch step.Kind {
		case types.StepSecrets:
			issues = append(issues, checkSecretsStep(step, configKeys)...)
		case types.StepConfigure:
			issues = append(issues, checkConfigureStep(step, configKeys)...)
		case types.StepTest:
			if step.Body.Get("action").IsAbsent() {
				issues = append(issues, warnf("setup step %d (test): no action defined, step will be a no-op", step.Position))
			}
		case types.StepInfo:
			issues = append(issues, checkInfoStep(step)...)
		}
	}
	return issues
}

func checkSecretsStep(step types.WizardStep, configKeys map[string]bool) []Issue {
	var issues []Issue

	if len(step.Fields) == 0 && len(step.Collect) == 0 {
		issues = append(issues, errorf("setup step %d (secrets): must define fields or collect", step.Position))
	}

	for _, field := range step.Fields {
		if !field.HasKey {
			issues = append(issues, errorf("setup step %d (secrets): field is missing required 'key'", step.Position))
		}
		issues = append(issues, checkObtain(step.Position, field)...)
	}

	issues = append(issues, checkCollectRefs(step, configKeys)...)
	return issues
}

// checkObtain validates a secret field's acquisition config. The OAuth
// variants need both endpoint URLs; each missing URL is its own error.
func checkObtain(position int, field types.StepField) []Issue {
	if field.Obtain == nil || !field.Obtain.HasType {
		return nil
	}

	var issues []Issue
	obtainType := field.Obtain.Type
	if !ObtainTypes[obtainType] {
		issues = append(issues, errorf("setup step %d (secrets): field %q has invalid obtain type %q (must be one of: %s)",
			position, field.Key, obtainType, enumList(ObtainTypes)))
		return issues
	}
	if oauthObtainTypes[obtainType] {
		if field.Obtain.AuthorizationURL == "" {
			issues = append(issues, errorf("setup step %d (secrets): field %q obtain type %q requires authorization_url",
				position, field.Key, obtainType))
		}
		if field.Obtain.TokenURL == "" {
			issues = append(issues, errorf("setup step %d (secrets): field %q obtain type %q requires token_url",
				position, field.Key, obtainType))
		}
	}
	return issues
}

func checkConfigureStep(step types.WizardStep, configKeys map[string]bool) []Issue {
	var issues []Issue

	// A configure step may legitimately be purely informational, so
	// empty-both is only advisory here.
	if len(step.Fields) == 0 && len(step.Collect) == 0 {
		issues = append(issues, warnf("setup step %d (configure): defines neither fields nor collect", step.Position))
	}

	for _, field := range step.Fields {
		if !field.HasKey {
			issues = append(issues, errorf("setup step %d (configure): field is missing required 'key'", step.Position))
		}
		if field.HasShowWhen && !hasSiblingField(step.Fields, field.ShowWhenField) {
			issues = append(issues, warnf("setup step %d (configure): field %q showWhen references unknown field %q",
				step.Position, field.Key, field.ShowWhenField))
		}
		if field.Type == "select" && field.Options.Len() == 0 {
			issues = append(issues, errorf("setup step %d (configure): select field %q requires non-empty options",
				step.Position, field.Key))
		}
		if DynamicFieldTypes[field.Type] && field.Options != nil {
			issues = append(issues, warnf("setup step %d (configure): field %q has type %q, static options will be ignored",
				step.Position, field.Key, field.Type))
		}
	}

	issues = append(issues, checkCollectRefs(step, configKeys)...)
	return issues
}

func checkInfoStep(step types.WizardStep) []Issue {
	var issues []Issue

	if step.Body.Get("content").IsAbsent() && step.Body.Get("title").IsAbsent() {
		issues = append(issues, warnf("setup step %d (info): has neither content nor title", step.Position))
	}

	for _, link := range step.Body.Get("links").Items() {
		if link.Get("url").IsAbsent() || link.Get("label").IsAbsent() {
			issues = append(issues, errorf("setup step %d (info): each link requires both url and label", step.Position))
		}
	}
	return issues
}

// checkCollectRefs resolves collect entries against the keys declared in
// extension.configuration. Unresolved references are advisory.
func checkCollectRefs(step types.WizardStep, configKeys map[string]bool) []Issue {
	var issues []Issue
	for _, ref := range step.Collect {
		if !configKeys[ref] {
			issues = append(issues, warnf("setup step %d (%s): collect references undeclared configuration key %q",
				step.Position, step.Kind, ref))
		}
	}
	return issues
}

func hasSiblingField(fields []types.StepField, key string) bool {
	for _, f := range fields {
		if f.HasKey && f.Key == key {
			return true
		}
	}
	return false
}
