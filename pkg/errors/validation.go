package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTemplateName validates a template name used as a store key and as
// a filename component. It rejects names that could be used for path
// traversal or injection attacks.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateTemplateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "template name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "template name too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "template name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "template name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// templateFileRegex matches the filenames the CLI accepts as template input.
var templateFileRegex = regexp.MustCompile(`(?i)\.json$`)

// ValidateTemplateFilename validates a template file path passed to the CLI.
// The only hard requirement is a .json extension; the file itself is
// validated on load.
func ValidateTemplateFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "template path cannot be empty")
	}
	if !templateFileRegex.MatchString(path) {
		return New(ErrCodeInvalidInput, "template file must have a .json extension: %q", path)
	}
	return nil
}
