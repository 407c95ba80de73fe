package xcodeproj

import (
	"fmt"
)

// MockStore implements Store with an in-memory project table for testing
type MockStore struct {
	projects map[string]*Project

	// SaveCalls counts the number of successful Save invocations
	SaveCalls int

	// Hooks for testing error scenarios
	LoadError error
	SaveError error
}

var _ Store = (*MockStore)(nil)

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		projects: make(map[string]*Project),
	}
}

// AddProject registers a project under the given manifest path
func (m *MockStore) AddProject(path string, project *Project) {
	m.projects[path] = project
}

// GetProject returns the stored project for a manifest path, if any
func (m *MockStore) GetProject(path string) (*Project, bool) {
	project, ok := m.projects[path]
	return project, ok
}

func (m *MockStore) Load(path string) (*Project, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}

	project, ok := m.projects[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}

	return project, nil
}

func (m *MockStore) Save(project *Project, path string) error {
	if m.SaveError != nil {
		return m.SaveError
	}

	m.projects[path] = project
	m.SaveCalls++
	return nil
}
