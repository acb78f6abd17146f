package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID builds a prefixed identifier with a short random hex suffix,
// e.g. "lst-3f2a9c1b4d6e".
func GenerateID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + hex[:12]
}
