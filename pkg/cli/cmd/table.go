package cmd

import (
	"github.com/pterm/pterm"

	apiclient "github.com/kiket/kiket/pkg/api/client"
	"github.com/kiket/kiket/pkg/cli/format"
)

// ResourceTable renders listings of platform resources.
type ResourceTable struct {
	table *pterm.TablePrinter
}

// NewResourceTable creates a table with the shared header style.
func NewResourceTable() *ResourceTable {
	headerStyle := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	return &ResourceTable{
		table: pterm.DefaultTable.WithHasHeader(true).WithHeaderStyle(headerStyle),
	}
}

// RenderIssues renders a table of issues.
func (t *ResourceTable) RenderIssues(issues []apiclient.Issue) error {
	if len(issues) == 0 {
		pterm.Println("No issues found")
		return nil
	}
	rows := pterm.TableData{{"KEY", "TITLE", "STATUS", "ASSIGNEE", "PROJECT"}}
	for _, issue := range issues {
		assignee := issue.Assignee
		if assignee == "" {
			assignee = "-"
		}
		rows = append(rows, []string{
			issue.Key,
			truncate(issue.Title, 60),
			issueStatusLabel(issue.Status),
			assignee,
			issue.Project,
		})
	}
	return t.table.WithData(rows).Render()
}

// RenderProjects renders a table of projects.
func (t *ResourceTable) RenderProjects(projects []apiclient.Project) error {
	if len(projects) == 0 {
		pterm.Println("No projects found")
		return nil
	}
	rows := pterm.TableData{{"KEY", "NAME", "OPEN ISSUES"}}
	for _, project := range projects {
		rows = append(rows, []string{
			project.Key,
			project.Name,
			pterm.Sprintf("%d", project.OpenIssues),
		})
	}
	return t.table.WithData(rows).Render()
}

// issueStatusLabel colors an issue status the way the web UI does.
func issueStatusLabel(status string) string {
	switch status {
	case "open", "in_progress":
		return format.Colorize(format.BoldGreen, status)
	case "blocked":
		return format.Colorize(format.BoldRed, status)
	case "closed", "done":
		return format.Colorize(format.White, status)
	default:
		return status
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
