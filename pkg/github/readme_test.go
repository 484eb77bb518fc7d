package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadme_DecodesWrappedBase64(t *testing.T) {
	t.Parallel()

	content := "# Profile\n\n<!--START_SECTION:waka-->\n<!--END_SECTION:waka-->\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(content))

	// The contents API wraps base64 at 60 columns.
	wrapped := ""
	for len(encoded) > 60 {
		wrapped += encoded[:60] + "\n"
		encoded = encoded[60:]
	}
	wrapped += encoded + "\n"

	client := restTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/octocat/readme", r.URL.Path)

		response := map[string]string{
			"path":    "README.md",
			"sha":     "abc123",
			"content": wrapped,
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	})

	file, err := client.Readme(context.Background(), "octocat", "octocat")
	require.NoError(t, err)

	assert.Equal(t, "README.md", file.Path)
	assert.Equal(t, "abc123", file.SHA)
	assert.Equal(t, content, file.Content)
}

func TestUpdateReadme(t *testing.T) {
	t.Parallel()

	var captured map[string]any

	client := restTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/repos/octocat/octocat/contents/README.md", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{}`))
	})

	file := &ReadmeFile{Path: "README.md", SHA: "abc123"}
	committer := Committer{Name: "readme-bot", Email: "bot@example.com"}

	err := client.UpdateReadme(context.Background(), "octocat", "octocat", file, "new content", "Updated with Dev Metrics", "main", committer)
	require.NoError(t, err)

	assert.Equal(t, "Updated with Dev Metrics", captured["message"])
	assert.Equal(t, "abc123", captured["sha"])
	assert.Equal(t, "main", captured["branch"])

	decoded, err := base64.StdEncoding.DecodeString(captured["content"].(string))
	require.NoError(t, err)
	assert.Equal(t, "new content", string(decoded))

	author, ok := captured["committer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "readme-bot", author["name"])
}

func TestUpdateReadme_DefaultBranch(t *testing.T) {
	t.Parallel()

	var captured map[string]any

	client := restTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{}`))
	})

	file := &ReadmeFile{Path: "README.md", SHA: "abc123"}

	err := client.UpdateReadme(context.Background(), "octocat", "octocat", file, "body", "msg", "", Committer{})
	require.NoError(t, err)

	assert.NotContains(t, captured, "branch")
}
