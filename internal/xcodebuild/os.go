package xcodebuild

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// xcodebuildBin is the external build tool invoked for every request.
const xcodebuildBin = "xcodebuild"

// OSRunner implements Runner by executing the real xcodebuild binary
type OSRunner struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
}

var _ Runner = (*OSRunner)(nil)

// NewOSRunner creates a new OSRunner streaming child output to the
// process's stdout and stderr
func NewOSRunner() *OSRunner {
	return &OSRunner{
		ctx:    context.Background(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithContext returns a new runner with the given context
func (r *OSRunner) WithContext(ctx context.Context) Runner {
	return &OSRunner{
		ctx:    ctx,
		stdout: r.stdout,
		stderr: r.stderr,
	}
}

// Run invokes xcodebuild -project <path> -scheme <name> <action> and blocks
// until it terminates. No timeout is imposed; cancellation happens through
// the context or external signal delivery.
func (r *OSRunner) Run(req Request) error {
	if req.ProjectPath == "" {
		return fmt.Errorf("project path cannot be empty")
	}
	if req.Scheme == "" {
		return fmt.Errorf("scheme cannot be empty")
	}

	cmd := exec.CommandContext(r.ctx, xcodebuildBin,
		"-project", req.ProjectPath,
		"-scheme", req.Scheme,
		string(req.Action))

	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &BuildError{Action: req.Action, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", xcodebuildBin, err)
	}

	return nil
}
