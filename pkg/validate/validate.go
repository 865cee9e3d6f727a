package validate

import (
	"github.com/kiket/kiket/pkg/types"
)

// Run executes the four validators in their fixed order and aggregates
// their issues. The resulting order is stable across runs on the same
// inputs: validator order, then document order, then rule order.
func Run(m *types.Manifest, layout ProjectLayout) *Report {
	report := &Report{}
	report.Append(Structural(m, layout)...)
	report.Append(WizardSteps(m)...)
	report.Append(CustomData(m, layout)...)
	report.Append(OutputFields(m)...)
	return report
}

// RunDir parses the manifest at the project root and validates it. A
// missing or unparseable manifest is returned as an error; everything else
// becomes issues in the report.
func RunDir(root string) (*Report, error) {
	path, err := types.FindManifest(root)
	if err != nil {
		return nil, err
	}
	m, err := types.ParseManifest(path)
	if err != nil {
		return nil, err
	}
	return Run(m, DirLayout(root)), nil
}
