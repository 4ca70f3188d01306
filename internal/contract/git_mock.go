package contract

import (
	"context"
	"time"

	"github.com/streakhq/streak/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient interface.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []any
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CommitLog implements the GitClient interface.
func (m *MockGitClient) CommitLog(ctx context.Context, repoPath string, since time.Time) ([]schema.CommitEvent, error) {
	ret := m.Called(ctx, repoPath, since)
	events, _ := ret.Get(0).([]schema.CommitEvent)
	return events, ret.Error(1)
}

// RepoHash implements the GitClient interface.
func (m *MockGitClient) RepoHash(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	hash, _ := ret.Get(0).(string)
	return hash, ret.Error(1)
}

// ConfiguredEmail implements the GitClient interface.
func (m *MockGitClient) ConfiguredEmail(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	email, _ := ret.Get(0).(string)
	return email, ret.Error(1)
}
