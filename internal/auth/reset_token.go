package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const resetTokenBytes = 32

// GenerateResetToken returns an opaque, unguessable single-use token for the
// password-reset flow.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
