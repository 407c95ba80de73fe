package cli_test

import (
	"bytes"
	"testing"

	"github.com/orchardgrid/xcsync/internal/cli"
	"github.com/orchardgrid/xcsync/internal/config"
	"github.com/orchardgrid/xcsync/internal/filesystem"
	"github.com/orchardgrid/xcsync/internal/xcodeproj"
	"github.com/stretchr/testify/require"
)

func TestRegisterCommand_AddsFileOnce(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("App.xcodeproj")

	store := xcodeproj.NewMockStore()
	store.AddProject("App.xcodeproj/project.pbxproj", xcodeproj.NewProject())

	run := func() string {
		var buf bytes.Buffer
		cmd := cli.NewRegisterCommand(fs, store)
		cmd.SetArgs([]string{"--project", "App.xcodeproj", "--file", "App/Generated.swift"})
		cmd.SetOut(&buf)

		require.NoError(t, cmd.Execute())
		return buf.String()
	}

	out := run()
	require.Contains(t, out, "Successfully added App/Generated.swift to the project!")
	require.Equal(t, 1, store.SaveCalls)

	// Second run is a no-op: no write, no duplicate reference.
	out = run()
	require.Contains(t, out, "already registered")
	require.Equal(t, 1, store.SaveCalls)

	project, ok := store.GetProject("App.xcodeproj/project.pbxproj")
	require.True(t, ok)
	require.Len(t, project.FileReferences(), 1)
}

func TestRegisterCommand_FullPipelineThroughPlistStore(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	store := xcodeproj.NewPlistStore(fs)
	require.NoError(t, store.Save(xcodeproj.NewProject(), "App.xcodeproj/project.pbxproj"))

	cmd := cli.NewRegisterCommand(fs, store)
	cmd.SetArgs([]string{"--project", "App.xcodeproj", "--file", "App/Generated.swift"})
	cmd.SetOut(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	reloaded, err := store.Load("App.xcodeproj/project.pbxproj")
	require.NoError(t, err)
	_, ok := reloaded.FindFileReference("App/Generated.swift")
	require.True(t, ok)
}

func TestRegisterCommand_ProjectFromConfigFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(config.ConfigFileName, []byte("project: App.xcodeproj/project.pbxproj\n"))

	store := xcodeproj.NewMockStore()
	store.AddProject("App.xcodeproj/project.pbxproj", xcodeproj.NewProject())

	var buf bytes.Buffer
	cmd := cli.NewRegisterCommand(fs, store)
	cmd.SetArgs([]string{"--file", "App/Generated.swift"})
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	require.Equal(t, 1, store.SaveCalls)
}

func TestRegisterCommand_MissingArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no project", []string{"--file", "App/Generated.swift"}, "no project given"},
		{"no file", []string{"--project", "App.xcodeproj"}, "no file given"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := cli.NewRegisterCommand(filesystem.NewMockFileSystem(), xcodeproj.NewMockStore())
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegisterCommand_ManifestNotFound(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	store := xcodeproj.NewMockStore()

	cmd := cli.NewRegisterCommand(fs, store)
	cmd.SetArgs([]string{"--project", "Missing.xcodeproj", "--file", "App/Generated.swift"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, xcodeproj.ErrManifestNotFound)
}

func TestRegisterCommand_InvalidConfigFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(config.ConfigFileName, []byte("project: [unterminated\n"))

	cmd := cli.NewRegisterCommand(fs, xcodeproj.NewMockStore())
	cmd.SetArgs([]string{"--file", "App/Generated.swift"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
