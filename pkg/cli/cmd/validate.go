package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kiket/kiket/pkg/cli/format"
	"github.com/kiket/kiket/pkg/types"
	"github.com/kiket/kiket/pkg/validate"
)

var (
	validateRemote bool
	validateFormat string
	validateServer string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [project directory]",
	Short: "Validate an extension manifest, optionally against the platform",
	Long: `Validate runs the same offline checks as lint. With --remote it
additionally submits the manifest to the platform's authoritative
validation endpoint and reports its findings.

Examples:
  # Offline validation
  kiket validate ./my-extension

  # Offline plus authoritative server-side validation
  kiket validate --remote ./my-extension`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runValidate(root)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateRemote, "remote", false, "Also validate against the platform API")
	validateCmd.Flags().StringVar(&validateFormat, "format", format.TextFormat, "Output format (text, json)")
	validateCmd.Flags().StringVar(&validateServer, "server", "", "API server override")
}

func runValidate(root string) error {
	start := time.Now()
	report, err := validate.RunDir(root)
	if err != nil {
		return err
	}

	formatter := format.NewIssueFormatter(root)
	formatter.OutputFormat = validateFormat
	errors, _ := formatter.PrintReport(report, time.Since(start))

	if validateRemote {
		if errors > 0 {
			return fmt.Errorf("not submitting for remote validation: fix local errors first")
		}
		if err := runRemoteValidation(root); err != nil {
			return err
		}
	}

	if errors > 0 {
		return fmt.Errorf("")
	}
	return nil
}

// runRemoteValidation submits the raw manifest to the platform's
// authoritative validation endpoint and prints its findings.
func runRemoteValidation(root string) error {
	path, err := types.FindManifest(root)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	api, err := newAPIClient(validateServer, "")
	if err != nil {
		return err
	}

	result, err := api.Extensions().Validate(context.Background(), data)
	if err != nil {
		return fmt.Errorf("remote validation failed: %w", err)
	}

	for _, issue := range result.Issues {
		if issue.Severity == "warning" {
			fmt.Printf("  %s %s\n", format.Warning("remote warning:"), issue.Message)
		} else {
			fmt.Printf("  %s %s\n", format.Error("remote error:"), issue.Message)
		}
	}
	if !result.Valid {
		return fmt.Errorf("platform rejected the manifest")
	}
	fmt.Println(format.Success("✓ platform accepted the manifest"))
	return nil
}
