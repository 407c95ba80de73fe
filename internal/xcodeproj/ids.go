package xcodeproj

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Xcode identifies every object in a pbxproj file by a 96-bit hex string.
const (
	objectIDAlphabet = "0123456789ABCDEF"
	objectIDLength   = 24
)

// generateObjectID generates a new unique object identifier in the
// 24-character uppercase hex format Xcode uses.
func generateObjectID() (string, error) {
	id, err := gonanoid.Generate(objectIDAlphabet, objectIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate object ID: %w", err)
	}
	return id, nil
}
