package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/kiket/kiket/pkg/types"
	"github.com/kiket/kiket/pkg/validate"
)

// wizardCmd groups setup-wizard subcommands.
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Inspect an extension's setup wizard",
}

// wizardPreviewCmd represents the wizard preview command
var wizardPreviewCmd = &cobra.Command{
	Use:   "preview [project directory]",
	Short: "Preview the setup wizard steps an installer will see",
	Long: `Preview validates the manifest and renders the setup wizard steps
in order. A manifest with validation errors cannot be previewed.

Examples:
  kiket wizard preview
  kiket wizard preview ./my-extension`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runWizardPreview(root)
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.AddCommand(wizardPreviewCmd)
}

func runWizardPreview(root string) error {
	path, err := types.FindManifest(root)
	if err != nil {
		return err
	}
	m, err := types.ParseManifest(path)
	if err != nil {
		return err
	}

	report := validate.Run(m, validate.DirLayout(root))
	if report.HasErrors() {
		for _, issue := range report.Errors() {
			fmt.Printf("  error: %s\n", issue.Message)
		}
		return fmt.Errorf("manifest has validation errors, fix them before previewing")
	}

	steps := m.Steps()
	if len(steps) == 0 {
		fmt.Println("No setup wizard defined.")
		return nil
	}

	rows := pterm.TableData{{"STEP", "KIND", "SUMMARY"}}
	for _, step := range steps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", step.Position),
			string(step.Kind),
			stepSummary(step),
		})
	}
	return pterm.DefaultTable.
		WithHasHeader(true).
		WithHeaderStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).
		WithData(rows).
		Render()
}

// stepSummary renders a one-line description of a wizard step.
func stepSummary(step types.WizardStep) string {
	switch step.Kind {
	case types.StepSecrets, types.StepConfigure:
		var parts []string
		if len(step.Fields) > 0 {
			keys := make([]string, 0, len(step.Fields))
			for _, f := range step.Fields {
				keys = append(keys, f.Key)
			}
			parts = append(parts, fmt.Sprintf("fields: %s", strings.Join(keys, ", ")))
		}
		if len(step.Collect) > 0 {
			parts = append(parts, fmt.Sprintf("collect: %s", strings.Join(step.Collect, ", ")))
		}
		if len(parts) == 0 {
			return "(informational)"
		}
		return strings.Join(parts, "; ")
	case types.StepTest:
		if action, ok := step.Body.Get("action").Str(); ok {
			return "action: " + action
		}
		return "(no action)"
	case types.StepInfo:
		if title, ok := step.Body.Get("title").Str(); ok {
			return title
		}
		return "(untitled)"
	default:
		return ""
	}
}
