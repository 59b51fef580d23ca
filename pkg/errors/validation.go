package errors

import (
	"strings"
	"unicode"
)

// ValidateItemName validates an item name from an input dataset.
// Names end up inside SVG text nodes and CSV cells, so the rules are
// intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateItemName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidData, "item name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidData, "item name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidData, "item name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a user-supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateDimensions validates a requested canvas size. Zero and
// negative dimensions are rejected outright; a lower bound keeps the
// layout engine from producing rings too thin to place markers in.
func ValidateDimensions(width, height int) error {
	const minDimension = 200
	if width < minDimension || height < minDimension {
		return New(ErrCodeInvalidInput, "canvas must be at least %dx%d, got %dx%d",
			minDimension, minDimension, width, height)
	}
	const maxDimension = 10000
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidInput, "canvas must be at most %dx%d, got %dx%d",
			maxDimension, maxDimension, width, height)
	}
	return nil
}

// ValidateFormat validates an output format name against the allowed set.
func ValidateFormat(format string, allowed []string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (allowed: %s)",
		format, strings.Join(allowed, ", "))
}
