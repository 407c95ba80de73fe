package main

import (
	"errors"
	"os"

	"github.com/orchardgrid/xcsync/internal/cli"
	"github.com/orchardgrid/xcsync/internal/xcodebuild"
)

func main() {
	if err := cli.Execute(); err != nil {
		var buildErr *xcodebuild.BuildError
		if errors.As(err, &buildErr) && buildErr.ExitCode > 0 {
			// Hand the operator the same exit code xcodebuild produced.
			os.Exit(buildErr.ExitCode)
		}
		os.Exit(1)
	}
}
