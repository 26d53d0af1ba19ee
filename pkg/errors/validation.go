package errors

import (
	"strings"
	"unicode"
)

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateFieldPath validates a dotted field path used to address
// nested JSON values (e.g. "milestone.title").
//
// Validation rules:
//   - Path cannot be empty
//   - No empty segments (leading/trailing/double dots)
//   - No control characters
func ValidateFieldPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "field path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "field path contains invalid characters")
		}
	}

	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return New(ErrCodeInvalidInput, "field path %q has an empty segment", path)
		}
	}

	return nil
}
