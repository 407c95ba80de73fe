package xcodeproj

import (
	"fmt"

	"github.com/orchardgrid/xcsync/internal/filesystem"
	"howett.net/plist"
)

// Store provides load/save access to project manifests. The manifest format
// is owned by the concrete implementation, not by callers.
type Store interface {
	Load(path string) (*Project, error)
	Save(project *Project, path string) error
}

var _ Store = (*PlistStore)(nil)

// PlistStore reads and writes pbxproj manifests through the plist codec.
// It preserves whichever plist flavor the manifest was loaded in.
type PlistStore struct {
	fs filesystem.FileSystem
}

// NewPlistStore creates a new PlistStore
func NewPlistStore(fs filesystem.FileSystem) *PlistStore {
	return &PlistStore{fs: fs}
}

// Load reads and decodes the manifest at path.
func (s *PlistStore) Load(path string) (*Project, error) {
	if !s.fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var raw map[string]interface{}
	format, err := plist.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestParse, path, err)
	}

	project, err := newProject(raw, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return project, nil
}

// Save persists the manifest atomically: the encoded graph is written to a
// temporary file next to the target and renamed over it, so a failed write
// leaves the original untouched.
func (s *PlistStore) Save(project *Project, path string) error {
	data, err := plist.MarshalIndent(project.raw, project.format, "\t")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrManifestWrite, path, err)
	}

	tmpPath := path + ".tmp"
	if err := s.fs.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrManifestWrite, tmpPath, err)
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrManifestWrite, path, err)
	}

	return nil
}
