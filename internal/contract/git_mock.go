package contract

import (
	"context"
	"time"

	"github.com/mattmahin/authortrend/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of GitClient for testing.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	callArgs := []any{ctx, repoPath}
	for _, a := range args {
		callArgs = append(callArgs, a)
	}
	ret := m.Called(callArgs...)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	return ret.String(0), ret.Error(1)
}

// ResolveRevision implements the GitClient interface.
func (m *MockGitClient) ResolveRevision(ctx context.Context, repoPath string, branch string, before time.Time) (string, error) {
	ret := m.Called(ctx, repoPath, branch, before)
	return ret.String(0), ret.Error(1)
}

// ListFilesAtRef implements the GitClient interface.
func (m *MockGitClient) ListFilesAtRef(ctx context.Context, repoPath string, rev string) ([]string, error) {
	ret := m.Called(ctx, repoPath, rev)
	files, _ := ret.Get(0).([]string)
	return files, ret.Error(1)
}

// BlameLineCounts implements the GitClient interface.
func (m *MockGitClient) BlameLineCounts(ctx context.Context, repoPath string, rev string, path string) (schema.AuthorCount, error) {
	ret := m.Called(ctx, repoPath, rev, path)
	counts, _ := ret.Get(0).(schema.AuthorCount)
	return counts, ret.Error(1)
}
