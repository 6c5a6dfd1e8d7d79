package k8s

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// RunNamePrefix prefixes names of Run resources.
	RunNamePrefix = "run-"
	// BuildNamePrefix prefixes names of Build resources.
	BuildNamePrefix = "build-"

	nameSuffixLength = 8
	maxNameLength    = 63
	nameAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var alphabetSize = big.NewInt(int64(len(nameAlphabet)))

// GenerateName returns prefix followed by 8 characters drawn uniformly from
// [a-z0-9]. Names are not unique by construction; a collision surfaces as a
// conflict at submission time.
func GenerateName(prefix string) (string, error) {
	suffix := make([]byte, nameSuffixLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate name: %w", err)
		}
		suffix[i] = nameAlphabet[n.Int64()]
	}

	// Keep the random suffix intact and trim the prefix to fit a DNS label
	if len(prefix)+nameSuffixLength > maxNameLength {
		prefix = prefix[:maxNameLength-nameSuffixLength]
	}

	return prefix + string(suffix), nil
}
