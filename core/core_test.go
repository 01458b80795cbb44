package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mattmahin/authortrend/internal/contract"
	"github.com/mattmahin/authortrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	revFeb = "aaaa000000000000000000000000000000000000"
	revMar = "bbbb000000000000000000000000000000000000"
)

// twoPeriodFixture wires a mock history: the repo appears in February 2016
// with one file by x-dev, gains a second file by Y_Dev in March, and has no
// qualifying snapshot in any other month.
func twoPeriodFixture(ctx context.Context) *contract.MockGitClient {
	mockClient := &contract.MockGitClient{}

	feb := schema.Period{Year: 2016, Month: time.February}.Boundary()
	mar := schema.Period{Year: 2016, Month: time.March}.Boundary()

	// Specific months first; the catch-all below soaks up the rest.
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", feb).Return(revFeb, nil)
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", mar).Return(revMar, nil)
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", mock.AnythingOfType("time.Time")).
		Return("", contract.ErrNoSnapshot)

	mockClient.On("ListFilesAtRef", ctx, "/test/repo", revFeb).
		Return([]string{"file1.go", "cache/tmp.bin"}, nil)
	mockClient.On("ListFilesAtRef", ctx, "/test/repo", revMar).
		Return([]string{"file2.go", "cache/tmp.bin"}, nil)

	mockClient.On("BlameLineCounts", ctx, "/test/repo", revFeb, "file1.go").
		Return(schema.AuthorCount{"x-dev": 8}, nil)
	mockClient.On("BlameLineCounts", ctx, "/test/repo", revMar, "file2.go").
		Return(schema.AuthorCount{"Y_Dev": 3}, nil)

	return mockClient
}

func TestRunReport(t *testing.T) {
	ctx := context.Background()
	mockClient := twoPeriodFixture(ctx)
	cfg := &contract.Config{
		RepoPath:          "/test/repo",
		Workers:           4,
		GeneratedPrefixes: []string{"cache/"},
	}

	perf, excluded, err := runReport(ctx, cfg, mockClient, nil)
	assert.NoError(t, err)

	// Only the two resolvable months appear; skipped months leave no entry
	assert.Len(t, perf, 2)
	assert.Equal(t, schema.AuthorCount{"x-dev": 8}, perf[schema.Period{Year: 2016, Month: time.February}])
	assert.Equal(t, schema.AuthorCount{"Y_Dev": 3}, perf[schema.Period{Year: 2016, Month: time.March}])

	// The binary in cache/ was excluded with the prefix reason, once
	assert.Equal(t, []schema.ExcludedFile{
		{Path: "cache/tmp.bin", Reason: schema.ReasonGenerated},
	}, excluded)

	mockClient.AssertExpectations(t)
}

func TestRunReportNormalizedEndToEnd(t *testing.T) {
	ctx := context.Background()
	mockClient := twoPeriodFixture(ctx)
	cfg := &contract.Config{
		RepoPath:          "/test/repo",
		Workers:           4,
		GeneratedPrefixes: []string{"cache/"},
	}

	perf, _, err := runReport(ctx, cfg, mockClient, nil)
	assert.NoError(t, err)

	normalized := NormalizeAuthors(perf, NewNormalizer())
	feb := schema.Period{Year: 2016, Month: time.February}
	mar := schema.Period{Year: 2016, Month: time.March}
	assert.Equal(t, schema.AuthorCount{"X Dev": 8}, normalized[feb])
	assert.Equal(t, schema.AuthorCount{"Y Dev": 3}, normalized[mar])
}

// A fatal listing failure names the period and aborts the run.
func TestRunReportFatalListing(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockGitClient{}

	feb := schema.Period{Year: 2016, Month: time.February}.Boundary()
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", feb).Return(revFeb, nil)
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", mock.AnythingOfType("time.Time")).
		Return("", contract.ErrNoSnapshot)
	mockClient.On("ListFilesAtRef", ctx, "/test/repo", revFeb).
		Return(nil, errors.New("object store corrupt"))

	cfg := &contract.Config{RepoPath: "/test/repo", Workers: 4}
	_, _, err := runReport(ctx, cfg, mockClient, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "2016-02")
}

// The global --before bound caps every period's resolution date.
func TestRunReportBeforeBound(t *testing.T) {
	ctx := context.Background()
	mockClient := &contract.MockGitClient{}
	bound := time.Date(2016, time.February, 15, 0, 0, 0, 0, time.UTC)

	// February resolves at its own boundary, which precedes the bound
	feb := schema.Period{Year: 2016, Month: time.February}.Boundary()
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", feb).Return(revFeb, nil)
	// Every later month is clamped to the bound itself
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", bound).Return(revFeb, nil)
	mockClient.On("ResolveRevision", ctx, "/test/repo", "", mock.AnythingOfType("time.Time")).
		Return("", contract.ErrNoSnapshot)

	mockClient.On("ListFilesAtRef", ctx, "/test/repo", revFeb).Return([]string{"file1.go"}, nil)
	mockClient.On("BlameLineCounts", ctx, "/test/repo", revFeb, "file1.go").
		Return(schema.AuthorCount{"x-dev": 8}, nil)

	cfg := &contract.Config{RepoPath: "/test/repo", Workers: 2, Before: bound}
	perf, _, err := runReport(ctx, cfg, mockClient, nil)
	assert.NoError(t, err)

	// January is clamped too but resolves nothing; from March onward every
	// month resolves the February snapshot again with identical counts.
	assert.NotContains(t, perf, schema.Period{Year: 2016, Month: time.January})
	assert.Equal(t, schema.AuthorCount{"x-dev": 8}, perf[schema.Period{Year: 2016, Month: time.February}])
	assert.Equal(t, schema.AuthorCount{"x-dev": 8}, perf[schema.Period{Year: 2016, Month: time.March}])
}
