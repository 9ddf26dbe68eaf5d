package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/wavtrim/internal/config"
)

// Job pairs an input file with the path its trimmed copy is written to.
type Job struct {
	Input  string
	Output string
}

// Plan expands pattern and maps every match into outputRoot, keeping the
// base name and swapping the extension for ext when ext is set. Matches are
// sorted so runs are reproducible. Directories are ignored; matches that
// cannot be stat'ed, such as dangling symlinks, are kept so the runner
// reports them per file. A malformed pattern returns an error wrapping
// filepath.ErrBadPattern.
func Plan(pattern, outputRoot, ext string) ([]Job, error) {
	expanded, err := config.ExpandPath(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := filepath.Glob(expanded)
	if err != nil {
		return nil, fmt.Errorf("bad input pattern %q: %w", pattern, err)
	}

	root, err := config.ExpandPath(outputRoot)
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	jobs := make([]Job, 0, len(matches))
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil && info.IsDir() {
			continue
		}

		base := filepath.Base(match)
		if ext != "" {
			base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
		}

		jobs = append(jobs, Job{Input: match, Output: filepath.Join(root, base)})
	}

	return jobs, nil
}

// EnsureDirs creates the parent directory of every job output. It tries
// every directory and returns the joined failures; jobs whose directory is
// missing then fail individually when the runner writes them.
func EnsureDirs(jobs []Job) error {
	var errs []error

	seen := make(map[string]struct{}, 1)
	for _, job := range jobs {
		dir := filepath.Dir(job.Output)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			errs = append(errs, fmt.Errorf("create output directory: %w", err))
		}
	}

	return errors.Join(errs...)
}
