// Package registrar ensures generated source files are referenced by an
// Xcode project manifest, writing the manifest back only when a change
// was actually made.
package registrar

import (
	"fmt"
	"path/filepath"

	"github.com/orchardgrid/xcsync/internal/filesystem"
	"github.com/orchardgrid/xcsync/internal/xcodeproj"
)

const manifestFileName = "project.pbxproj"

// Registrar registers file references in a project manifest
type Registrar struct {
	fs    filesystem.FileSystem
	store xcodeproj.Store
}

// New creates a new Registrar
func New(fs filesystem.FileSystem, store xcodeproj.Store) *Registrar {
	return &Registrar{fs: fs, store: store}
}

// RegisterFile ensures filePath is referenced by the manifest at
// manifestPath, inserting it under parentGroup (main group when empty).
//
// Returns true when the manifest was changed and written back, false when
// the file was already registered and nothing was touched. Registering the
// same path twice never creates a duplicate entry.
func (r *Registrar) RegisterFile(manifestPath, filePath, parentGroup string) (bool, error) {
	resolved := r.ResolveManifestPath(manifestPath)

	project, err := r.store.Load(resolved)
	if err != nil {
		return false, err
	}

	if _, ok := project.FindFileReference(filePath); ok {
		return false, nil
	}

	if _, err := project.AddFileReference(filePath, parentGroup); err != nil {
		return false, fmt.Errorf("failed to add %s to manifest: %w", filePath, err)
	}

	if err := r.store.Save(project, resolved); err != nil {
		return false, err
	}

	return true, nil
}

// ResolveManifestPath accepts either the project.pbxproj file itself or the
// enclosing .xcodeproj bundle directory.
func (r *Registrar) ResolveManifestPath(manifestPath string) string {
	if r.fs.IsDir(manifestPath) {
		return filepath.Join(manifestPath, manifestFileName)
	}
	return manifestPath
}
