package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kiket/kiket/pkg/log"
)

// Issue is a tracked issue as returned by the platform.
type Issue struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Assignee  string `json:"assignee,omitempty"`
	Project   string `json:"project"`
	Milestone string `json:"milestone,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateIssueRequest is the payload for creating an issue.
type CreateIssueRequest struct {
	Project string   `json:"project"`
	Title   string   `json:"title"`
	Body    string   `json:"body,omitempty"`
	Labels  []string `json:"labels,omitempty"`
}

// IssueListOptions filters issue listings.
type IssueListOptions struct {
	Project string
	Status  string
	Limit   int
}

// IssueClient provides methods for interacting with issues.
type IssueClient struct {
	client *Client
	logger log.Logger
}

// List returns issues matching the options.
func (ic *IssueClient) List(ctx context.Context, opts IssueListOptions) ([]Issue, error) {
	query := url.Values{}
	if opts.Project != "" {
		query.Set("project", opts.Project)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}
	path := "/issues"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	ic.logger.Debug("Listing issues", log.Str("project", opts.Project))

	var result struct {
		Issues []Issue `json:"issues"`
	}
	if err := ic.client.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Issues, nil
}

// Get returns one issue by key.
func (ic *IssueClient) Get(ctx context.Context, key string) (*Issue, error) {
	if key == "" {
		return nil, fmt.Errorf("issue key is required")
	}
	var issue Issue
	if err := ic.client.do(ctx, http.MethodGet, "/issues/"+url.PathEscape(key), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Create creates a new issue.
func (ic *IssueClient) Create(ctx context.Context, req CreateIssueRequest) (*Issue, error) {
	if req.Project == "" {
		return nil, fmt.Errorf("project is required")
	}
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	ic.logger.Debug("Creating issue", log.Str("project", req.Project), log.Str("title", req.Title))

	var issue Issue
	if err := ic.client.do(ctx, http.MethodPost, "/issues", req, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}
