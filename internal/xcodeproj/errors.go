package xcodeproj

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrManifestNotFound indicates no manifest exists at the given path.
	ErrManifestNotFound = errors.New("xcodeproj: manifest not found")

	// ErrManifestParse indicates the manifest could not be decoded.
	ErrManifestParse = errors.New("xcodeproj: manifest is malformed")

	// ErrManifestWrite indicates the manifest could not be persisted.
	// The original file is left untouched when this is returned.
	ErrManifestWrite = errors.New("xcodeproj: failed to write manifest")

	// ErrGroupNotFound indicates the requested parent group does not exist.
	ErrGroupNotFound = errors.New("xcodeproj: parent group not found")
)
