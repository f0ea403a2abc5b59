package errors

import (
	"strings"
	"unicode"
)

// maxTrackingNumberLength bounds raw input before any carrier-specific check.
const maxTrackingNumberLength = 64

// ValidateTrackingNumber applies the carrier-independent checks every
// tracking number must pass before a provider looks at it:
//   - not empty after trimming
//   - at most 64 characters
//   - no control characters
//
// Format rules (digit counts, prefixes, country suffixes) belong to the
// individual carriers.
func ValidateTrackingNumber(number string) error {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return New(ErrCodeInvalidInput, "tracking number cannot be empty")
	}
	if len(trimmed) > maxTrackingNumberLength {
		return New(ErrCodeInvalidInput, "tracking number too long (max %d characters)", maxTrackingNumberLength)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "tracking number contains invalid control characters")
		}
	}
	return nil
}

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
