package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLabel validates a category or segment label.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidData, "label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidData, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidData, "label contains invalid control characters")
		}
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit CSS hex colors.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor validates a segment or total-bar color.
// Accepts #rgb / #rrggbb hex colors and CSS color keywords. Keywords
// are checked against the table in [NamedColorHex], so every accepted
// color resolves in the raster sinks too.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if strings.HasPrefix(color, "#") {
		if !hexColorRegex.MatchString(color) {
			return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
		}
		return nil
	}

	if _, ok := NamedColorHex(color); !ok {
		return New(ErrCodeInvalidColor, "unknown color name: %q", color)
	}

	return nil
}

// chartIDRegex matches the canonical 8-4-4-4-12 UUID text form.
var chartIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidateChartID validates a stored-chart identifier.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "chart id cannot be empty")
	}
	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid chart id: %q", id)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
