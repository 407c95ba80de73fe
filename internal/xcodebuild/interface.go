package xcodebuild

import (
	"context"
	"fmt"
)

// Action is one of the fixed xcodebuild sub-steps this tool drives.
type Action string

const (
	ActionClean Action = "clean"
	ActionBuild Action = "build"
)

// Request describes a single xcodebuild invocation. It is created per
// invocation, consumed once, and discarded.
type Request struct {
	ProjectPath string
	Scheme      string
	Action      Action
}

// Runner provides an abstraction over xcodebuild invocations for testability
type Runner interface {
	// Run executes xcodebuild for the request, blocking until the child
	// process terminates. Output is streamed, not captured.
	Run(req Request) error

	// Context support for external cancellation
	WithContext(ctx context.Context) Runner
}

// BuildError reports a non-zero exit from an xcodebuild sub-step. It is
// fatal for the invocation; there is no retry.
type BuildError struct {
	Action   Action
	ExitCode int
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("xcodebuild %s failed with exit code %d", e.Action, e.ExitCode)
}
