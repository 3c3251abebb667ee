package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock of GitClient for use in tests.
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

// GetChangeLog implements the GitClient interface.
func (m *MockGitClient) GetChangeLog(ctx context.Context, repoPath string, since string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, since)
	out, _ := ret.Get(0).([]byte)
	return out, ret.Error(1)
}
