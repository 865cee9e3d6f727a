package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/kiket/kiket/pkg/api/client"
	"github.com/kiket/kiket/pkg/cli/format"
)

var (
	issueProject string
	issueStatus  string
	issueLimit   int
	issueJSON    bool
	issueBody    string
	issueLabels  []string
)

func newIssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Manage issues",
	}
	cmd.AddCommand(newIssueListCmd(), newIssueShowCmd(), newIssueCreateCmd())
	return cmd
}

func newIssueListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List issues",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPIClient("", "")
			if err != nil {
				return err
			}
			issues, err := api.Issues().List(context.Background(), apiclient.IssueListOptions{
				Project: issueProject,
				Status:  issueStatus,
				Limit:   issueLimit,
			})
			if err != nil {
				return err
			}
			if issueJSON {
				return json.NewEncoder(os.Stdout).Encode(issues)
			}
			return NewResourceTable().RenderIssues(issues)
		},
	}
	cmd.Flags().StringVarP(&issueProject, "project", "p", "", "Filter by project key")
	cmd.Flags().StringVar(&issueStatus, "status", "", "Filter by status")
	cmd.Flags().IntVar(&issueLimit, "limit", 50, "Maximum number of issues to return")
	cmd.Flags().BoolVar(&issueJSON, "json", false, "Output as JSON")
	return cmd
}

func newIssueShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "show <key>",
		Short:         "Show one issue",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPIClient("", "")
			if err != nil {
				return err
			}
			issue, err := api.Issues().Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(format.Highlight("%s", issue.Key), issue.Title)
			fmt.Println("Status:   ", issueStatusLabel(issue.Status))
			fmt.Println("Project:  ", issue.Project)
			if issue.Assignee != "" {
				fmt.Println("Assignee: ", issue.Assignee)
			}
			if issue.Milestone != "" {
				fmt.Println("Milestone:", issue.Milestone)
			}
			fmt.Println("Updated:  ", issue.UpdatedAt)
			return nil
		},
	}
}

func newIssueCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "create <title>",
		Short:         "Create an issue",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if issueProject == "" {
				return fmt.Errorf("--project is required")
			}
			api, err := newAPIClient("", "")
			if err != nil {
				return err
			}
			issue, err := api.Issues().Create(context.Background(), apiclient.CreateIssueRequest{
				Project: issueProject,
				Title:   args[0],
				Body:    issueBody,
				Labels:  issueLabels,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s created %s\n", format.StatusSymbol(true), issue.Key)
			return nil
		},
	}
	cmd.Flags().StringVarP(&issueProject, "project", "p", "", "Project key (required)")
	cmd.Flags().StringVar(&issueBody, "body", "", "Issue description")
	cmd.Flags().StringSliceVar(&issueLabels, "label", nil, "Labels to apply")
	return cmd
}

func init() {
	rootCmd.AddCommand(newIssueCmd())
}
