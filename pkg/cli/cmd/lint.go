package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kiket/kiket/pkg/cli/format"
	"github.com/kiket/kiket/pkg/validate"
)

var (
	lintStrict bool
	lintQuiet  bool
	lintFormat string
)

// lintCmd represents the lint command
var lintCmd = &cobra.Command{
	Use:   "lint [project directory]",
	Short: "Validate an extension manifest",
	Long: `Lint an extension project's manifest (extension.yaml) and its
custom-data module schemas.

The linter checks the manifest's identity and delivery configuration, the
setup wizard steps, custom-data module schemas against their declared
permissions, and the output-field display schema. Errors block publishing;
warnings are advisory.

Examples:
  # Lint the extension in the current directory
  kiket lint

  # Lint a specific project directory
  kiket lint ./my-extension

  # Treat warnings as failures (for CI)
  kiket lint --strict ./my-extension

  # Output in JSON format for CI/CD integration
  kiket lint --format json ./my-extension`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runLint(root)
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "Treat warnings as failures")
	lintCmd.Flags().BoolVar(&lintQuiet, "quiet", false, "Only show issues, no success output")
	lintCmd.Flags().StringVar(&lintFormat, "format", format.TextFormat, "Output format (text, json)")
}

// runLint executes the validation engine against one project directory and
// renders the report. The exit status is errors-only unless --strict.
func runLint(root string) error {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("project directory %s does not exist", root)
	}

	start := time.Now()
	report, err := validate.RunDir(root)
	if err != nil {
		return err
	}

	formatter := format.NewIssueFormatter(root)
	formatter.OutputFormat = lintFormat
	formatter.Quiet = lintQuiet
	errors, warnings := formatter.PrintReport(report, time.Since(start))

	if errors > 0 || (lintStrict && warnings > 0) {
		// The summary already showed the counts.
		return fmt.Errorf("")
	}
	return nil
}
