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

var publishServer string

func newExtensionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extension",
		Short: "Manage marketplace extensions",
	}
	cmd.AddCommand(newExtensionPublishCmd())
	return cmd
}

func newExtensionPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish [project directory]",
		Short: "Publish an extension manifest to the marketplace",
		Long: `Publish lints the manifest locally and, when clean, submits it
to the marketplace. The platform re-validates authoritatively before
accepting.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runPublish(root)
		},
	}
	cmd.Flags().StringVar(&publishServer, "server", "", "API server override")
	return cmd
}

func runPublish(root string) error {
	start := time.Now()
	report, err := validate.RunDir(root)
	if err != nil {
		return err
	}

	formatter := format.NewIssueFormatter(root)
	if errors, _ := formatter.PrintReport(report, time.Since(start)); errors > 0 {
		return fmt.Errorf("cannot publish a manifest with errors")
	}

	path, err := types.FindManifest(root)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	api, err := newAPIClient(publishServer, "")
	if err != nil {
		return err
	}
	result, err := api.Extensions().Publish(context.Background(), data)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	fmt.Printf("%s published %s %s (%s)\n",
		format.StatusSymbol(true), result.ExtensionID, result.Version, result.Status)
	return nil
}

func init() {
	rootCmd.AddCommand(newExtensionCmd())
}
