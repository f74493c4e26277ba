package gh

import (
	"context"
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

// pageSize is the largest page GitHub serves for connection fields.
const pageSize = 100

// Issue is an open GitHub issue as needed for import.
type Issue struct {
	Number int
	Title  string
	URL    string
	Labels []string
	// DueOn is the due date of the issue's milestone, if any.
	DueOn *time.Time
}

// RepositoryIssues fetches up to limit open issues of owner/repo, oldest
// first, following pagination as needed.
func (c *Client) RepositoryIssues(ctx context.Context, owner, repo string, limit int) ([]Issue, error) {
	var (
		issues []Issue
		cursor string
	)
	for len(issues) < limit {
		page, next, hasNext, err := c.issuePage(ctx, owner, repo, cursor, min(pageSize, limit-len(issues)))
		if err != nil {
			return nil, err
		}
		issues = append(issues, page...)
		if !hasNext {
			break
		}
		cursor = next
	}
	return issues, nil
}

// issuePage fetches one page of open issues.
// Returns issues, next cursor, and whether there are more issues.
func (c *Client) issuePage(ctx context.Context, owner, repo, cursor string, first int) ([]Issue, string, bool, error) {
	req := graphql.NewRequest(`
		query($owner: String!, $repo: String!, $first: Int!, $after: String) {
			repository(owner: $owner, name: $repo) {
				issues(first: $first, after: $after, states: OPEN, orderBy: {field: CREATED_AT, direction: ASC}) {
					pageInfo {
						hasNextPage
						endCursor
					}
					nodes {
						number
						title
						url
						labels(first: 20) {
							nodes {
								name
							}
						}
						milestone {
							dueOn
						}
					}
				}
			}
		}
	`)
	req.Var("owner", owner)
	req.Var("repo", repo)
	req.Var("first", first)
	if cursor != "" {
		req.Var("after", cursor)
	} else {
		req.Var("after", nil)
	}

	var resp struct {
		Repository *struct {
			Issues struct {
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
				Nodes []struct {
					Number int    `json:"number"`
					Title  string `json:"title"`
					URL    string `json:"url"`
					Labels struct {
						Nodes []struct {
							Name string `json:"name"`
						} `json:"nodes"`
					} `json:"labels"`
					Milestone *struct {
						DueOn *string `json:"dueOn"`
					} `json:"milestone"`
				} `json:"nodes"`
			} `json:"issues"`
		} `json:"repository"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return nil, "", false, fmt.Errorf("failed to get issues: %w", err)
	}
	if resp.Repository == nil {
		return nil, "", false, fmt.Errorf("repository %s/%s not found", owner, repo)
	}

	issues := make([]Issue, 0, len(resp.Repository.Issues.Nodes))
	for _, node := range resp.Repository.Issues.Nodes {
		issue := Issue{
			Number: node.Number,
			Title:  node.Title,
			URL:    node.URL,
		}
		for _, label := range node.Labels.Nodes {
			issue.Labels = append(issue.Labels, label.Name)
		}
		// Milestones without a due date report null
		if node.Milestone != nil && node.Milestone.DueOn != nil {
			if due, err := time.Parse(time.RFC3339, *node.Milestone.DueOn); err == nil {
				issue.DueOn = &due
			}
		}
		issues = append(issues, issue)
	}

	page := resp.Repository.Issues.PageInfo
	return issues, page.EndCursor, page.HasNextPage, nil
}

// repositoryID retrieves the GraphQL node ID of owner/repo.
func (c *Client) repositoryID(ctx context.Context, owner, repo string) (string, error) {
	req := graphql.NewRequest(`
		query($owner: String!, $repo: String!) {
			repository(owner: $owner, name: $repo) {
				id
			}
		}
	`)
	req.Var("owner", owner)
	req.Var("repo", repo)

	var resp struct {
		Repository *struct {
			ID string `json:"id"`
		} `json:"repository"`
	}

	if err := c.makeRequest(ctx, req, &resp); err != nil {
		return "", err
	}
	if resp.Repository == nil || resp.Repository.ID == "" {
		return "", fmt.Errorf("repository %s/%s not found", owner, repo)
	}
	return resp.Repository.ID, nil
}
