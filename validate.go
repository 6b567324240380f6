package capriblue

import "strings"

// requiredPaths are the dot-paths every locale document must provide.
var requiredPaths = []string{
	"site.title",
	"site.tagline",
	"sections.projects",
	"labels.visit",
	"footer.copyright",
	"projects",
}

// projectFields are the per-entry fields that must be non-blank.
var projectFields = []string{"codename", "description"}

// Validate admits or rejects a raw locale document, returning the first
// violation found. It performs no coercion and no defaulting: a document
// is either fully valid or rejected outright.
//
// Violations are reported as *MissingKeyError, *InvalidShapeError, or
// *MissingProjectFieldError.
func Validate(raw any) error {
	for _, path := range requiredPaths {
		if _, ok := lookupPath(raw, path); !ok {
			return &MissingKeyError{Path: path}
		}
	}

	projects, _ := lookupPath(raw, "projects")
	entries, ok := projects.([]any)
	if !ok {
		return &InvalidShapeError{Reason: "projects must be a sequence"}
	}

	for i, entry := range entries {
		for _, field := range projectFields {
			value, ok := lookupPath(entry, field)
			if !ok || strings.TrimSpace(asText(value)) == "" {
				return &MissingProjectFieldError{Index: i, Field: field}
			}
		}
	}
	return nil
}

// lookupPath walks raw down a dot-separated path, descending key by key.
// It returns false as soon as a segment is absent or an intermediate
// value is not an object, never raising a lookup error for steps past an
// absent one.
func lookupPath(raw any, path string) (any, bool) {
	current := raw
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok := obj[segment]
		if !ok || value == nil {
			return nil, false
		}
		current = value
	}
	return current, true
}
