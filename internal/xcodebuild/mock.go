package xcodebuild

import (
	"context"
)

// MockRunner implements Runner for testing, recording every invocation
type MockRunner struct {
	// Invocations holds the requests Run received, in order
	Invocations []Request

	// Hooks for testing error scenarios, keyed by action
	Errors map[Action]error
}

var _ Runner = (*MockRunner)(nil)

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Errors: make(map[Action]error),
	}
}

// FailWith makes Run return err for the given action
func (m *MockRunner) FailWith(action Action, err error) {
	m.Errors[action] = err
}

// Actions returns the actions Run received, in order
func (m *MockRunner) Actions() []Action {
	actions := make([]Action, 0, len(m.Invocations))
	for _, req := range m.Invocations {
		actions = append(actions, req.Action)
	}
	return actions
}

func (m *MockRunner) Run(req Request) error {
	m.Invocations = append(m.Invocations, req)
	return m.Errors[req.Action]
}

func (m *MockRunner) WithContext(ctx context.Context) Runner {
	return m
}
