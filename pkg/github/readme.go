package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ReadmeFile is the profile README as served by the contents API.
type ReadmeFile struct {
	Path    string
	SHA     string
	Content string
}

// Committer identifies the author of a README update commit.
type Committer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Readme fetches and decodes the README of owner/repo.
func (c *Client) Readme(ctx context.Context, owner, repo string) (*ReadmeFile, error) {
	var decoded struct {
		Path    string `json:"path"`
		SHA     string `json:"sha"`
		Content string `json:"content"`
	}

	path := fmt.Sprintf("/repos/%s/%s/readme", owner, repo)

	err := c.rest(ctx, http.MethodGet, path, nil, http.StatusOK, &decoded)
	if err != nil {
		return nil, fmt.Errorf("fetch readme: %w", err)
	}

	// The contents API wraps base64 at 60 columns.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(decoded.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("decode readme content: %w", err)
	}

	return &ReadmeFile{
		Path:    decoded.Path,
		SHA:     decoded.SHA,
		Content: string(raw),
	}, nil
}

// UpdateReadme commits new README content. branch may be empty to target the
// default branch.
func (c *Client) UpdateReadme(ctx context.Context, owner, repo string, file *ReadmeFile, newContent, message, branch string, committer Committer) error {
	body := map[string]any{
		"message":   message,
		"content":   base64.StdEncoding.EncodeToString([]byte(newContent)),
		"sha":       file.SHA,
		"committer": committer,
	}

	if branch != "" {
		body["branch"] = branch
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal readme update: %w", err)
	}

	path := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, file.Path)

	err = c.rest(ctx, http.MethodPut, path, bytes.NewReader(encoded), http.StatusOK, nil)
	if err != nil {
		return fmt.Errorf("update readme: %w", err)
	}

	return nil
}
