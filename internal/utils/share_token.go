package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ShareTokenLength is the length of public share tokens.
const ShareTokenLength = 16

// GenerateShareToken derives a share token from a random (v4) UUID:
// separators stripped, first ShareTokenLength hex characters kept.
func GenerateShareToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return strings.ReplaceAll(id.String(), "-", "")[:ShareTokenLength], nil
}

// IsValidShareToken reports whether token has the shape GenerateShareToken produces.
func IsValidShareToken(token string) bool {
	if len(token) != ShareTokenLength {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
