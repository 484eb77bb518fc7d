package github

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// CommitStat is one authored commit: when it was committed and how many
// lines it touched.
type CommitStat struct {
	CommittedAt time.Time
	Additions   int64
	Deletions   int64
}

// Times projects commit timestamps out of a stat list for histogram
// bucketing.
func Times(stats []CommitStat) []time.Time {
	times := make([]time.Time, len(stats))
	for i, stat := range stats {
		times[i] = stat.CommittedAt
	}

	return times
}

// History fetches default-branch commits authored by authorID across the
// given repositories. Repositories are fetched concurrently with at most
// maxParallel calls in flight; result order is unspecified since the events
// feed commutative histogram counters.
func (c *Client) History(ctx context.Context, repos []Repository, authorID string, maxParallel int) ([]CommitStat, error) {
	if maxParallel < 1 {
		maxParallel = 1
	}

	var (
		mu    sync.Mutex
		stats []CommitStat
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for _, repo := range repos {
		repo := repo
		group.Go(func() error {
			repoStats, err := c.repoHistory(groupCtx, repo, authorID)
			if err != nil {
				return err
			}

			mu.Lock()
			stats = append(stats, repoStats...)
			mu.Unlock()

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// repoHistory fetches authored commits for a single repository.
// Repositories without a default branch (empty, just initialized) yield no
// events rather than an error.
func (c *Client) repoHistory(ctx context.Context, repo Repository, authorID string) ([]CommitStat, error) {
	var decoded struct {
		Repository *struct {
			DefaultBranchRef *struct {
				Target struct {
					History struct {
						Nodes []struct {
							CommittedDate string `json:"committedDate"`
							Additions     int64  `json:"additions"`
							Deletions     int64  `json:"deletions"`
						} `json:"nodes"`
					} `json:"history"`
				} `json:"target"`
			} `json:"defaultBranchRef"`
		} `json:"repository"`
	}

	vars := map[string]any{"owner": repo.Owner, "name": repo.Name, "id": authorID}

	err := c.graphql(ctx, queryCommitDates, vars, &decoded)
	if err != nil {
		return nil, fmt.Errorf("fetch commit history for %s/%s: %w", repo.Owner, repo.Name, err)
	}

	if decoded.Repository == nil || decoded.Repository.DefaultBranchRef == nil {
		return nil, nil
	}

	nodes := decoded.Repository.DefaultBranchRef.Target.History.Nodes
	stats := make([]CommitStat, 0, len(nodes))

	for _, node := range nodes {
		committed, parseErr := time.Parse(commitTimeLayout, node.CommittedDate)
		if parseErr != nil {
			return nil, fmt.Errorf("parse commit date %q: %w", node.CommittedDate, parseErr)
		}

		stats = append(stats, CommitStat{
			CommittedAt: committed.UTC(),
			Additions:   node.Additions,
			Deletions:   node.Deletions,
		})
	}

	return stats, nil
}
