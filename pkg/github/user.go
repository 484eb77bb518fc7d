package github

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// User is the authenticated GitHub user. DiskUsageKB is -1 when the token
// lacks the user scope.
type User struct {
	Login        string
	NodeID       string
	Email        string
	Hireable     bool
	DiskUsageKB  int64
	PublicRepos  int
	PrivateRepos int
}

// Repository is a repository with its primary language display name.
// Language is empty when the repository has no primary language.
type Repository struct {
	Owner    string
	Name     string
	IsFork   bool
	Language string
}

// restUser mirrors the REST /user payload fields this tool needs.
type restUser struct {
	Login             string `json:"login"`
	NodeID            string `json:"node_id"`
	Email             string `json:"email"`
	Hireable          bool   `json:"hireable"`
	DiskUsage         *int64 `json:"disk_usage"`
	PublicRepos       int    `json:"public_repos"`
	OwnedPrivateRepos int    `json:"owned_private_repos"`
}

// Viewer fetches the authenticated user.
func (c *Client) Viewer(ctx context.Context) (*User, error) {
	var decoded restUser

	err := c.rest(ctx, http.MethodGet, "/user", nil, http.StatusOK, &decoded)
	if err != nil {
		return nil, fmt.Errorf("fetch authenticated user: %w", err)
	}

	diskUsage := int64(-1)
	if decoded.DiskUsage != nil {
		diskUsage = *decoded.DiskUsage
	}

	return &User{
		Login:        decoded.Login,
		NodeID:       decoded.NodeID,
		Email:        decoded.Email,
		Hireable:     decoded.Hireable,
		DiskUsageKB:  diskUsage,
		PublicRepos:  decoded.PublicRepos,
		PrivateRepos: decoded.OwnedPrivateRepos,
	}, nil
}

// repositoryNodes is the shared GraphQL repository list shape.
type repositoryNodes struct {
	Nodes []struct {
		Name   string `json:"name"`
		IsFork bool   `json:"isFork"`
		Owner  struct {
			Login string `json:"login"`
		} `json:"owner"`
		PrimaryLanguage *struct {
			Name string `json:"name"`
		} `json:"primaryLanguage"`
	} `json:"nodes"`
}

func (n repositoryNodes) toRepositories() []Repository {
	repos := make([]Repository, 0, len(n.Nodes))

	for _, node := range n.Nodes {
		repo := Repository{
			Owner:  node.Owner.Login,
			Name:   node.Name,
			IsFork: node.IsFork,
		}

		if node.PrimaryLanguage != nil {
			repo.Language = node.PrimaryLanguage.Name
		}

		repos = append(repos, repo)
	}

	return repos
}

// OwnedRepositories lists repositories owned by login, newest first.
func (c *Client) OwnedRepositories(ctx context.Context, login string) ([]Repository, error) {
	var decoded struct {
		User struct {
			Repositories repositoryNodes `json:"repositories"`
		} `json:"user"`
	}

	err := c.graphql(ctx, queryOwnedRepositories, map[string]any{"username": login}, &decoded)
	if err != nil {
		return nil, fmt.Errorf("fetch owned repositories: %w", err)
	}

	return decoded.User.Repositories.toRepositories(), nil
}

// ContributedRepositories lists repositories login has committed to,
// excluding forks.
func (c *Client) ContributedRepositories(ctx context.Context, login string) ([]Repository, error) {
	var decoded struct {
		User struct {
			RepositoriesContributedTo repositoryNodes `json:"repositoriesContributedTo"`
		} `json:"user"`
	}

	err := c.graphql(ctx, queryContributedRepositories, map[string]any{"username": login}, &decoded)
	if err != nil {
		return nil, fmt.Errorf("fetch contributed repositories: %w", err)
	}

	all := decoded.User.RepositoriesContributedTo.toRepositories()
	repos := make([]Repository, 0, len(all))

	for _, repo := range all {
		if !repo.IsFork {
			repos = append(repos, repo)
		}
	}

	return repos, nil
}

// Contributions returns the total contribution count for the current year.
func (c *Client) Contributions(ctx context.Context, login string) (int64, error) {
	var decoded struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int64 `json:"totalContributions"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	}

	err := c.graphql(ctx, queryContributions, map[string]any{"username": login}, &decoded)
	if err != nil {
		return 0, fmt.Errorf("fetch contributions: %w", err)
	}

	return decoded.User.ContributionsCollection.ContributionCalendar.TotalContributions, nil
}

// ProfileViews returns the number of profile repository views for the last
// two weeks, the finest window the traffic API offers.
func (c *Client) ProfileViews(ctx context.Context, owner, repo string) (int, error) {
	var decoded struct {
		Count int `json:"count"`
	}

	path := fmt.Sprintf("/repos/%s/%s/traffic/views?per=week", owner, repo)

	err := c.rest(ctx, http.MethodGet, path, nil, http.StatusOK, &decoded)
	if err != nil {
		return 0, fmt.Errorf("fetch profile views: %w", err)
	}

	return decoded.Count, nil
}

// commitTimeLayout is the ISO-8601 layout used by committedDate.
const commitTimeLayout = time.RFC3339
