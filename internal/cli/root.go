package cli

import (
	"fmt"

	"github.com/orchardgrid/xcsync/internal/filesystem"
	"github.com/orchardgrid/xcsync/internal/xcodebuild"
	"github.com/orchardgrid/xcsync/internal/xcodeproj"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, store xcodeproj.Store, runner xcodebuild.Runner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xcsync",
		Short: "Keep generated source files in sync with an Xcode project",
		Long: `A CLI tool for keeping generated source files in sync with an Xcode project.

xcsync registers generated files in the project manifest and triggers clean
rebuilds so the IDE re-indexes them.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewRegisterCommand(fs, store))
	rootCmd.AddCommand(NewBuildCommand(fs, runner))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	store := xcodeproj.NewPlistStore(fs)
	runner := xcodebuild.NewOSRunner()

	rootCmd := NewRootCommand(fs, store, runner)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
