package client

import (
	"context"
	"net/http"

	"github.com/kiket/kiket/pkg/log"
)

// Project is a project as returned by the platform.
type Project struct {
	ID         string `json:"id"`
	Key        string `json:"key"`
	Name       string `json:"name"`
	OpenIssues int    `json:"open_issues"`
	CreatedAt  string `json:"created_at"`
}

// ProjectClient provides methods for interacting with projects.
type ProjectClient struct {
	client *Client
	logger log.Logger
}

// List returns all projects visible to the authenticated account.
func (pc *ProjectClient) List(ctx context.Context) ([]Project, error) {
	pc.logger.Debug("Listing projects")

	var result struct {
		Projects []Project `json:"projects"`
	}
	if err := pc.client.do(ctx, http.MethodGet, "/projects", nil, &result); err != nil {
		return nil, err
	}
	return result.Projects, nil
}
