// Package gh provides a GraphQL client for the GitHub repositories that
// projects point at. It reads open issues for import and creates issues
// from local ones.
package gh

import (
	"context"
	"fmt"

	"github.com/machinebox/graphql"

	"github.com/h0rv/projbook/internal/auth"
)

// Endpoint is the GitHub GraphQL API.
const Endpoint = "https://api.github.com/graphql"

// Client is a GitHub GraphQL API client.
type Client struct {
	gql   *graphql.Client
	token string
}

// New creates a client authenticated with the first token the providers
// yield. Pass auth.DefaultProviders for the usual lookup order.
func New(providers ...auth.TokenProvider) (*Client, error) {
	token, err := auth.GetToken(providers...)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain GitHub token: %w", err)
	}
	return NewWithEndpoint(Endpoint, token), nil
}

// NewWithEndpoint creates a client for an explicit endpoint and token.
func NewWithEndpoint(endpoint, token string) *Client {
	return &Client{
		gql:   graphql.NewClient(endpoint),
		token: token,
	}
}

// makeRequest executes a GraphQL request with authentication.
func (c *Client) makeRequest(ctx context.Context, req *graphql.Request, resp interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.gql.Run(ctx, req, resp)
}
