package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/mattmahin/authortrend/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git %s failed in %q: %s. If this is not a Git repository, verify the path or run 'git init': %w", args[0], repoPath, stderr, err)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// ResolveRevision implements the GitClient interface.
func (c *LocalGitClient) ResolveRevision(ctx context.Context, repoPath string, branch string, before time.Time) (string, error) {
	args := []string{
		"log", "-n", "1",
		"--format=format:%H",
	}
	if !before.IsZero() {
		args = append(args, "--before="+before.Format(time.RFC3339))
	}
	if branch != "" {
		args = append(args, branch)
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		// A branch that does not exist (yet) is a resolution miss, not a
		// broken repository.
		if strings.Contains(err.Error(), "unknown revision") ||
			strings.Contains(err.Error(), "bad revision") {
			return "", ErrNoSnapshot
		}
		return "", err
	}
	rev := strings.TrimSpace(string(out))
	if rev == "" {
		return "", ErrNoSnapshot
	}
	return rev, nil
}

// ListFilesAtRef implements the GitClient interface.
func (c *LocalGitClient) ListFilesAtRef(ctx context.Context, repoPath string, rev string) ([]string, error) {
	args := []string{
		"ls-tree", "-r", "--name-only",
		rev,
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	files := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(files) == 1 && files[0] == "" {
		return []string{}, nil
	}
	return files, nil
}

// BlameLineCounts implements the GitClient interface.
func (c *LocalGitClient) BlameLineCounts(ctx context.Context, repoPath string, rev string, path string) (schema.AuthorCount, error) {
	args := []string{
		"blame", "--line-porcelain",
		rev, "--", path,
	}
	out, err := c.Run(ctx, repoPath, args...)
	if err != nil {
		return nil, err
	}
	return ParseBlameAuthors(out), nil
}

// ParseBlameAuthors counts lines per raw author in 'git blame
// --line-porcelain' output. Each attributed line carries exactly one
// "author " header.
func ParseBlameAuthors(out []byte) schema.AuthorCount {
	counts := make(schema.AuthorCount)
	for _, line := range strings.Split(string(out), "\n") {
		if author, ok := strings.CutPrefix(line, "author "); ok {
			counts[author]++
		}
	}
	return counts
}
