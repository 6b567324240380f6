package capriblue

import "fmt"

// ResourceUnavailableError reports a non-success HTTP response while
// fetching a locale document.
type ResourceUnavailableError struct {
	Location string
	Status   int
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("locale resource %s unavailable: status %d", e.Location, e.Status)
}

// MalformedResourceError reports a locale document body that could not be
// decoded as JSON.
type MalformedResourceError struct {
	Language string
	err      error
}

func (e *MalformedResourceError) Error() string {
	return fmt.Sprintf("malformed locale resource for language %q: %v", e.Language, e.err)
}

func (e *MalformedResourceError) Unwrap() error { return e.err }

// MissingKeyError reports a required dot-path absent from a locale document.
type MissingKeyError struct {
	Path string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("locale document missing required key %q", e.Path)
}

// InvalidShapeError reports a locale document value with the wrong
// structural type.
type InvalidShapeError struct {
	Reason string
}

func (e *InvalidShapeError) Error() string { return e.Reason }

// MissingProjectFieldError reports a project entry whose required field is
// absent or blank.
type MissingProjectFieldError struct {
	Index int
	Field string
}

func (e *MissingProjectFieldError) Error() string {
	return fmt.Sprintf("project entry %d: missing or empty %q", e.Index, e.Field)
}
