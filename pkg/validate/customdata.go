package validate

import (
	"path/filepath"

	yaml "gopkg.in/yaml.v3"

	"github.com/kiket/kiket/pkg/types"
)

// CustomData validates on-disk custom-data module schemas and cross-checks
// them against the permissions declared in the manifest. Discovery and the
// permission cross-check are independent passes: a broken schema never
// suppresses the permission check for other modules, and vice versa.
func CustomData(m *types.Manifest, layout ProjectLayout) []Issue {
	schemas := layout.ModuleSchemas()
	permissions := m.Extension().At("custom_data", "permissions")
	if len(schemas) == 0 && permissions.IsAbsent() {
		return nil
	}

	var issues []Issue

	// Pass 1: schema discovery and per-schema rules.
	var discovered []string
	for _, schema := range schemas {
		moduleID, schemaIssues := checkModuleSchema(schema)
		issues = append(issues, schemaIssues...)
		if moduleID != "" {
			discovered = append(discovered, moduleID)
		}
	}

	// Pass 2: permission operations.
	declared := make(map[string]bool)
	for _, entry := range permissions.Items() {
		module := entry.Get("module").StringOr("")
		if module != "" {
			declared[module] = true
		}
		if invalid := invalidOperations(entry.Get("operations")); len(invalid) > 0 {
			issues = append(issues, errorf("custom_data permission for module %q has invalid operations: %s (must be one of: %s)",
				module, joinQuoted(invalid), enumList(CustomDataOperations)))
		}
	}

	// Pass 3: modules on disk that no permission entry references.
	for _, moduleID := range discovered {
		if !declared[moduleID] {
			issues = append(issues, warnf("custom_data module %q is defined but not declared in extension.custom_data.permissions", moduleID))
		}
	}

	return issues
}

// checkModuleSchema validates one schema file and returns the module
// identifier when one could be established.
func checkModuleSchema(schema ModuleSchemaFile) (string, []Issue) {
	name := filepath.Base(schema.Path)
	if schema.Err != nil {
		return "", []Issue{errorf("custom_data module %q: failed to read %s: %v", schema.Dir, name, schema.Err)}
	}

	var node yaml.Node
	if err := yaml.Unmarshal(schema.Data, &node); err != nil {
		return "", []Issue{errorf("custom_data module %q: failed to parse %s: %v", schema.Dir, name, err)}
	}
	doc := types.NewConfigNode(&node)

	var issues []Issue
	moduleID := ""
	module := doc.Get("module")
	switch {
	case module.IsAbsent():
		issues = append(issues, errorf("custom_data module %q: schema is missing 'module'", schema.Dir))
	case !module.IsScalar():
		issues = append(issues, errorf("custom_data module %q: 'module' must be a string", schema.Dir))
	default:
		moduleID, _ = module.Str()
		if !identifierRe.MatchString(moduleID) {
			issues = append(issues, warnf("custom_data module %q: identifier %q should be lowercase reverse-DNS style", schema.Dir, moduleID))
		}
	}

	if doc.Get("tables").Len() == 0 {
		issues = append(issues, errorf("custom_data module %q: schema must define a non-empty 'tables'", schema.Dir))
	}

	return moduleID, issues
}

// invalidOperations returns the operations outside the permission verb set,
// preserving document order.
func invalidOperations(operations *types.ConfigNode) []string {
	var invalid []string
	for _, op := range operations.StringItems() {
		if !CustomDataOperations[op] {
			invalid = append(invalid, op)
		}
	}
	return invalid
}

func joinQuoted(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += `"` + v + `"`
	}
	return out
}
