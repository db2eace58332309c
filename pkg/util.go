package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

// GenerateRandomString returns a URL-safe, base64 encoded
// securely generated random string of s random bytes.
func GenerateRandomString(s int) (string, error) {
	b := make([]byte, s)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// TrimmedOutput turns a command output into a single line value.
func TrimmedOutput(out []byte) string {
	return strings.TrimSpace(string(out))
}
