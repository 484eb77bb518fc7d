package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient("test-token", WithEndpoints(server.URL+"/graphql", server.URL))
}

func TestViewer(t *testing.T) {
	t.Parallel()

	client := restTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"login": "octocat",
			"node_id": "MDQ6VXNlcjE=",
			"email": "octocat@github.com",
			"hireable": true,
			"disk_usage": 20480,
			"public_repos": 8,
			"owned_private_repos": 3
		}`))
	})

	user, err := client.Viewer(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &User{
		Login:        "octocat",
		NodeID:       "MDQ6VXNlcjE=",
		Email:        "octocat@github.com",
		Hireable:     true,
		DiskUsageKB:  20480,
		PublicRepos:  8,
		PrivateRepos: 3,
	}, user)
}

func TestViewer_MissingDiskUsage(t *testing.T) {
	t.Parallel()

	client := restTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"login": "octocat", "disk_usage": null}`))
	})

	user, err := client.Viewer(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(-1), user.DiskUsageKB)
}

func TestProfileViews(t *testing.T) {
	t.Parallel()

	client := restTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/octocat/traffic/views", r.URL.Path)
		assert.Equal(t, "week", r.URL.Query().Get("per"))

		_, _ = w.Write([]byte(`{"count": 4217, "uniques": 100, "views": []}`))
	})

	views, err := client.ProfileViews(context.Background(), "octocat", "octocat")
	require.NoError(t, err)

	assert.Equal(t, 4217, views)
}
