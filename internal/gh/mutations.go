package gh

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"
)

// CreatedIssue identifies an issue opened by CreateIssue.
type CreatedIssue struct {
	Number int
	URL    string
}

// CreateIssue opens an issue in owner/repo.
func (c *Client) CreateIssue(ctx context.Context, owner, repo, title, body string) (CreatedIssue, error) {
	repoID, err := c.repositoryID(ctx, owner, repo)
	if err != nil {
		return CreatedIssue{}, fmt.Errorf("failed to get repository ID: %w", err)
	}

	req := graphql.NewRequest(`
		mutation($repositoryId: ID!, $title: String!, $body: String) {
			createIssue(input: {repositoryId: $repositoryId, title: $title, body: $body}) {
				issue {
					number
					url
				}
			}
		}
	`)
	req.Var("repositoryId", repoID)
	req.Var("title", title)
	req.Var("body", body)

	var resp struct {
		CreateIssue struct {
			Issue struct {
				Number int    `json:"number"`
				URL    string `json:"url"`
			} `json:"issue"`
		} `json:"createIssue"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return CreatedIssue{}, fmt.Errorf("failed to create issue: %w", err)
	}

	return CreatedIssue{
		Number: resp.CreateIssue.Issue.Number,
		URL:    resp.CreateIssue.Issue.URL,
	}, nil
}
