package k8s

import (
	"regexp"
	"strings"
	"testing"
)

// TestGenerateName tests the shape of generated names
func TestGenerateName(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		pattern string
	}{
		{
			name:    "run prefix",
			prefix:  RunNamePrefix,
			pattern: `^run-[a-z0-9]{8}$`,
		},
		{
			name:    "build prefix",
			prefix:  BuildNamePrefix,
			pattern: `^build-[a-z0-9]{8}$`,
		},
		{
			name:    "empty prefix",
			prefix:  "",
			pattern: `^[a-z0-9]{8}$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateName(tt.prefix)
			if err != nil {
				t.Fatalf("GenerateName(%q) error = %v", tt.prefix, err)
			}
			if !regexp.MustCompile(tt.pattern).MatchString(got) {
				t.Errorf("GenerateName(%q) = %s, want pattern %s", tt.prefix, got, tt.pattern)
			}
		})
	}
}

// TestGenerateNameLongPrefix verifies the suffix survives and the result stays a DNS label
func TestGenerateNameLongPrefix(t *testing.T) {
	prefix := strings.Repeat("p", 80) + "-"

	got, err := GenerateName(prefix)
	if err != nil {
		t.Fatalf("GenerateName() error = %v", err)
	}
	if len(got) != maxNameLength {
		t.Errorf("len(name) = %d, want %d", len(got), maxNameLength)
	}
	if !regexp.MustCompile(`[a-z0-9]{8}$`).MatchString(got) {
		t.Errorf("name %s lost its random suffix", got)
	}
}

// TestGenerateNameDistinct draws many names and expects no collision. The
// suffix space is 36^8, so a collision here points at a broken source.
func TestGenerateNameDistinct(t *testing.T) {
	const draws = 10000

	seen := make(map[string]struct{}, draws)
	for i := 0; i < draws; i++ {
		name, err := GenerateName(RunNamePrefix)
		if err != nil {
			t.Fatalf("GenerateName() error = %v", err)
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate name %s after %d draws", name, i)
		}
		seen[name] = struct{}{}
	}
}
