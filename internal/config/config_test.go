package config_test

import (
	"testing"

	"github.com/orchardgrid/xcsync/internal/config"
	"github.com/orchardgrid/xcsync/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		hasFile  bool
		expected config.Config
	}{
		{
			name:    "missing file yields empty config",
			hasFile: false,
		},
		{
			name:    "all fields",
			hasFile: true,
			content: "project: App.xcodeproj\nscheme: App\ngroup: Generated\n",
			expected: config.Config{
				Project: "App.xcodeproj",
				Scheme:  "App",
				Group:   "Generated",
			},
		},
		{
			name:     "partial file keeps other fields empty",
			hasFile:  true,
			content:  "scheme: App\n",
			expected: config.Config{Scheme: "App"},
		},
		{
			name:     "unknown keys are ignored",
			hasFile:  true,
			content:  "scheme: App\ntarget: ignored\n",
			expected: config.Config{Scheme: "App"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMockFileSystem()
			if tt.hasFile {
				fs.AddFile(config.ConfigFileName, []byte(tt.content))
			}

			cfg, err := config.Load(fs, ".")
			require.NoError(t, err)
			require.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile(config.ConfigFileName, []byte("scheme: [unterminated\n"))

	_, err := config.Load(fs, ".")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
