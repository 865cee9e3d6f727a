package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var projectJSON bool

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	listCmd := &cobra.Command{
		Use:           "list",
		Short:         "List projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPIClient("", "")
			if err != nil {
				return err
			}
			projects, err := api.Projects().List(context.Background())
			if err != nil {
				return err
			}
			if projectJSON {
				return json.NewEncoder(os.Stdout).Encode(projects)
			}
			return NewResourceTable().RenderProjects(projects)
		},
	}
	listCmd.Flags().BoolVar(&projectJSON, "json", false, "Output as JSON")

	cmd.AddCommand(listCmd)
	return cmd
}

func init() {
	rootCmd.AddCommand(newProjectCmd())
}
