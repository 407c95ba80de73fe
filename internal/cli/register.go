package cli

import (
	"fmt"

	"github.com/orchardgrid/xcsync/internal/config"
	"github.com/orchardgrid/xcsync/internal/filesystem"
	"github.com/orchardgrid/xcsync/internal/registrar"
	"github.com/orchardgrid/xcsync/internal/xcodeproj"
	"github.com/spf13/cobra"
)

// RegisterCommand handles the register command
type RegisterCommand struct {
	fs    filesystem.FileSystem
	store xcodeproj.Store

	project string
	file    string
	group   string
}

// NewRegisterCommand creates a new register command
func NewRegisterCommand(fs filesystem.FileSystem, store xcodeproj.Store) *cobra.Command {
	cmd := &RegisterCommand{fs: fs, store: store}

	cobraCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a source file in the project manifest",
		Long: `Register a source file in the Xcode project manifest.

The manifest is only written back when the file was not referenced yet;
registering an already-known file is a no-op.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.project, "project", "p", "", "path to the .xcodeproj bundle or project.pbxproj")
	cobraCmd.Flags().StringVarP(&cmd.file, "file", "f", "", "project-relative path of the file to register")
	cobraCmd.Flags().StringVarP(&cmd.group, "group", "g", "", "parent group to insert the reference under")

	return cobraCmd
}

// Run executes the register command
func (c *RegisterCommand) Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.fs, ".")
	if err != nil {
		return err
	}

	project := firstNonEmpty(c.project, cfg.Project)
	group := firstNonEmpty(c.group, cfg.Group)

	if project == "" {
		return fmt.Errorf("no project given (use --project or set 'project' in %s)", config.ConfigFileName)
	}
	if c.file == "" {
		return fmt.Errorf("no file given (use --file)")
	}

	changed, err := registrar.New(c.fs, c.store).RegisterFile(project, c.file, group)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !changed {
		_, _ = fmt.Fprintln(out, SubtleStyle.Render(fmt.Sprintf("%s is already registered; nothing to do.", c.file)))
		return nil
	}

	_, _ = fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Successfully added %s to the project!", c.file)))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
