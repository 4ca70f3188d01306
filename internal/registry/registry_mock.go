package registry

import (
	"github.com/streakhq/streak/internal/contract"
	"github.com/stretchr/testify/mock"
)

// MockRepoRegistry is a testify mock for the RepoRegistry interface.
type MockRepoRegistry struct {
	mock.Mock
}

var _ contract.RepoRegistry = &MockRepoRegistry{} // Compile-time check

// List implements the RepoRegistry interface.
func (m *MockRepoRegistry) List() ([]string, error) {
	ret := m.Called()
	repos, _ := ret.Get(0).([]string)
	return repos, ret.Error(1)
}

// Add implements the RepoRegistry interface.
func (m *MockRepoRegistry) Add(paths []string) (int, error) {
	ret := m.Called(paths)
	return ret.Int(0), ret.Error(1)
}

// Remove implements the RepoRegistry interface.
func (m *MockRepoRegistry) Remove(paths []string) (int, error) {
	ret := m.Called(paths)
	return ret.Int(0), ret.Error(1)
}
