package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// newTestServer serves GraphQL requests with handle and records them.
func newTestServer(t *testing.T, handle func(req gqlRequest) string) (*Client, *[]gqlRequest) {
	t.Helper()
	var seen []gqlRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		var req gqlRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, handle(req))
	}))
	t.Cleanup(srv.Close)
	return NewWithEndpoint(srv.URL, "test-token"), &seen
}

func TestRepositoryIssues(t *testing.T) {
	client, seen := newTestServer(t, func(req gqlRequest) string {
		if req.Variables["after"] == nil {
			return `{"data":{"repository":{"issues":{
				"pageInfo":{"hasNextPage":true,"endCursor":"c1"},
				"nodes":[
					{"number":1,"title":"Fix login","url":"https://github.com/octo/site/issues/1",
					 "labels":{"nodes":[{"name":"bug"},{"name":"priority: high"}]},
					 "milestone":{"dueOn":"2024-03-01T00:00:00Z"}},
					{"number":2,"title":"Docs","url":"u2","labels":{"nodes":[]},"milestone":null}
				]}}}}`
		}
		return `{"data":{"repository":{"issues":{
			"pageInfo":{"hasNextPage":false,"endCursor":"c2"},
			"nodes":[{"number":3,"title":"Footer","url":"u3","labels":{"nodes":[]},"milestone":{"dueOn":null}}]
		}}}}`
	})

	issues, err := client.RepositoryIssues(context.Background(), "octo", "site", 10)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	assert.Equal(t, "Fix login", issues[0].Title)
	assert.Equal(t, []string{"bug", "priority: high"}, issues[0].Labels)
	require.NotNil(t, issues[0].DueOn)
	assert.Equal(t, "2024-03-01", issues[0].DueOn.Format("2006-01-02"))
	assert.Nil(t, issues[1].DueOn)
	assert.Nil(t, issues[2].DueOn)

	require.Len(t, *seen, 2)
	assert.Equal(t, "c1", (*seen)[1].Variables["after"])
	assert.Equal(t, "octo", (*seen)[0].Variables["owner"])
}

func TestRepositoryIssues_RespectsLimit(t *testing.T) {
	client, seen := newTestServer(t, func(req gqlRequest) string {
		return `{"data":{"repository":{"issues":{
			"pageInfo":{"hasNextPage":true,"endCursor":"more"},
			"nodes":[{"number":1,"title":"One","url":"u","labels":{"nodes":[]}},
			         {"number":2,"title":"Two","url":"u","labels":{"nodes":[]}}]}}}}`
	})

	issues, err := client.RepositoryIssues(context.Background(), "octo", "site", 2)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
	require.Len(t, *seen, 1, "no further page once the limit is reached")
	assert.EqualValues(t, 2, (*seen)[0].Variables["first"])
}

func TestRepositoryIssues_Errors(t *testing.T) {
	t.Run("missing repository", func(t *testing.T) {
		client, _ := newTestServer(t, func(gqlRequest) string {
			return `{"data":{"repository":null}}`
		})
		_, err := client.RepositoryIssues(context.Background(), "octo", "gone", 5)
		assert.ErrorContains(t, err, "octo/gone not found")
	})

	t.Run("graphql error", func(t *testing.T) {
		client, _ := newTestServer(t, func(gqlRequest) string {
			return `{"data":null,"errors":[{"message":"Bad credentials"}]}`
		})
		_, err := client.RepositoryIssues(context.Background(), "octo", "site", 5)
		assert.ErrorContains(t, err, "Bad credentials")
	})
}

func TestCreateIssue(t *testing.T) {
	client, seen := newTestServer(t, func(req gqlRequest) string {
		if strings.Contains(req.Query, "createIssue") {
			return `{"data":{"createIssue":{"issue":{"number":42,"url":"https://github.com/octo/site/issues/42"}}}}`
		}
		return `{"data":{"repository":{"id":"R_123"}}}`
	})

	created, err := client.CreateIssue(context.Background(), "octo", "site", "Fix login", "body")
	require.NoError(t, err)
	assert.Equal(t, 42, created.Number)
	assert.Equal(t, "https://github.com/octo/site/issues/42", created.URL)

	require.Len(t, *seen, 2)
	assert.Equal(t, "R_123", (*seen)[1].Variables["repositoryId"])
	assert.Equal(t, "Fix login", (*seen)[1].Variables["title"])
}
