package validate

import (
	"github.com/kiket/kiket/pkg/types"
)

// OutputFields validates the display-field schema under
// extension.output_fields. Returns an empty list when the block is absent
// or empty.
func OutputFields(m *types.Manifest) []Issue {
	outputFields := m.Extension().Get("output_fields")
	if outputFields.IsAbsent() {
		return nil
	}
	if !outputFields.IsMapping() {
		return []Issue{errorf("extension.output_fields must be a mapping")}
	}

	var issues []Issue
	for _, entry := range outputFields.Entries() {
		if !outputFieldKeyRe.MatchString(entry.Key) {
			issues = append(issues, errorf("output field %q: key must be lowercase with underscores (%s)", entry.Key, outputFieldKeyRe))
		}
		if !entry.Value.IsMapping() {
			issues = append(issues, errorf("output field %q: definition must be a mapping", entry.Key))
			continue
		}

		schema := entry.Value
		if schema.Get("label").IsAbsent() {
			issues = append(issues, warnf("output field %q: label is recommended", entry.Key))
		}
		if t := schema.Get("type"); !t.IsAbsent() {
			if name := t.StringOr(""); !OutputFieldTypes[name] {
				issues = append(issues, errorf("output field %q: invalid type %q (must be one of: %s)", entry.Key, name, enumList(OutputFieldTypes)))
			}
		}
		if icon := schema.Get("icon"); !icon.IsAbsent() {
			if name := icon.StringOr(""); !iconNameRe.MatchString(name) {
				issues = append(issues, warnf("output field %q: icon %q should match %s", entry.Key, name, iconNameRe))
			}
		}
		if helpURL := schema.Get("help_url"); !helpURL.IsAbsent() {
			if url := helpURL.StringOr(""); !httpURLRe.MatchString(url) {
				issues = append(issues, errorf("output field %q: help_url must start with http:// or https://", entry.Key))
			}
		}
	}
	return issues
}
