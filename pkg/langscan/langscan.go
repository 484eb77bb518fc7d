// Package langscan detects the primary language of local repositories with
// enry, feeding the same language-per-repo renderer as the API path. Used by
// the offline preview mode.
package langscan

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/src-d/enry/v2"

	"github.com/readmetrics/readmetrics/pkg/report"
)

// sampleSize is how many bytes of a file enry inspects. Language
// classification does not need full contents.
const sampleSize = 16 * 1024

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// PrimaryLanguage returns the dominant language of the repository at dir,
// measured by classified file count. Vendored, documentation and generated
// files are excluded. Returns "" for repositories with no classifiable file.
func PrimaryLanguage(dir string) (string, error) {
	counts := make(map[string]int)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if skippedDirs[entry.Name()] {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)
		if enry.IsVendor(rel) || enry.IsDocumentation(rel) || enry.IsConfiguration(rel) {
			return nil
		}

		language := classify(rel, path)
		if language != "" {
			counts[language]++
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", dir, err)
	}

	best := ""
	for language, count := range counts {
		if best == "" || count > counts[best] || (count == counts[best] && language < best) {
			best = language
		}
	}

	return best, nil
}

// classify detects one file's language from its name and a content sample.
func classify(rel, path string) string {
	language, safe := enry.GetLanguageByExtension(rel)
	if safe {
		return language
	}

	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	sample := make([]byte, sampleSize)

	n, err := io.ReadFull(file, sample)
	if err != nil && n == 0 {
		return ""
	}

	return enry.GetLanguage(filepath.Base(rel), sample[:n])
}

// ScanRepositories classifies each immediate subdirectory of root as one
// repository, mirroring the shape the GitHub path produces.
func ScanRepositories(root string) ([]report.RepositoryLanguage, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	repos := make([]report.RepositoryLanguage, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		language, scanErr := PrimaryLanguage(filepath.Join(root, entry.Name()))
		if scanErr != nil {
			return nil, scanErr
		}

		repos = append(repos, report.RepositoryLanguage{
			Repository: entry.Name(),
			Language:   language,
		})
	}

	return repos, nil
}
