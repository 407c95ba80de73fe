package cli

import (
	"fmt"

	"github.com/orchardgrid/xcsync/internal/config"
	"github.com/orchardgrid/xcsync/internal/filesystem"
	"github.com/orchardgrid/xcsync/internal/xcodebuild"
	"github.com/spf13/cobra"
)

// BuildCommand handles the build command
type BuildCommand struct {
	fs     filesystem.FileSystem
	runner xcodebuild.Runner

	project string
	scheme  string
}

// NewBuildCommand creates a new build command
func NewBuildCommand(fs filesystem.FileSystem, runner xcodebuild.Runner) *cobra.Command {
	cmd := &BuildCommand{fs: fs, runner: runner}

	cobraCmd := &cobra.Command{
		Use:   "build",
		Short: "Clean and rebuild a scheme with xcodebuild",
		Long: `Clean and rebuild a scheme with xcodebuild.

Runs 'xcodebuild clean' followed by 'xcodebuild build'; the build step is
only attempted when the clean succeeded. xcodebuild output is streamed to
the console and a non-zero exit is propagated.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.project, "project", "p", "", "path to the .xcodeproj bundle")
	cobraCmd.Flags().StringVarP(&cmd.scheme, "scheme", "s", "", "scheme to clean and build")

	return cobraCmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.fs, ".")
	if err != nil {
		return err
	}

	project := firstNonEmpty(c.project, cfg.Project)
	scheme := firstNonEmpty(c.scheme, cfg.Scheme)

	if project == "" {
		return fmt.Errorf("no project given (use --project or set 'project' in %s)", config.ConfigFileName)
	}
	if scheme == "" {
		return fmt.Errorf("no scheme given (use --scheme or set 'scheme' in %s)", config.ConfigFileName)
	}

	out := cmd.OutOrStdout()
	runner := c.runner.WithContext(cmd.Context())

	err = xcodebuild.CleanBuild(runner, project, scheme, func(action xcodebuild.Action) {
		switch action {
		case xcodebuild.ActionClean:
			_, _ = fmt.Fprintln(out, StepStyle.Render("Cleaning build folder..."))
		case xcodebuild.ActionBuild:
			_, _ = fmt.Fprintln(out, StepStyle.Render("Building project..."))
		}
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, SuccessStyle.Render("Done!"))
	return nil
}
