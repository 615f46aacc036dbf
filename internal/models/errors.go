package models

import "fmt"

// SpecParseError indicates a document could not be loaded as OpenAPI.
type SpecParseError struct {
	Source string
	Err    error
}

// NewSpecParseError wraps a parse or validation failure for a spec source.
func NewSpecParseError(source string, err error) *SpecParseError {
	return &SpecParseError{Source: source, Err: err}
}

func (e *SpecParseError) Error() string {
	return fmt.Sprintf("parsing spec %s: %v", e.Source, e.Err)
}

func (e *SpecParseError) Unwrap() error { return e.Err }

// SpecIndexConflictError indicates two distinct operations resolved to the
// same index key while building an operation index.
type SpecIndexConflictError struct {
	Key         string
	Existing    string
	Conflicting string
}

func (e *SpecIndexConflictError) Error() string {
	return fmt.Sprintf("index conflict on %s: %s vs %s", e.Key, e.Existing, e.Conflicting)
}

// URLFormatError indicates a URL is not a legacy API docs URL.
type URLFormatError struct {
	URL string
}

func (e *URLFormatError) Error() string {
	return fmt.Sprintf("not a legacy API docs URL: %s", e.URL)
}

// OperationNotFoundError indicates the referenced operation does not exist
// in the legacy spec.
type OperationNotFoundError struct {
	Tag     string
	Summary string
}

func (e *OperationNotFoundError) Error() string {
	if e.Summary == "" {
		return fmt.Sprintf("no operation found in legacy spec for tag %q", e.Tag)
	}
	return fmt.Sprintf("pair (%s, %s) not found in legacy spec", e.Tag, e.Summary)
}

// NoEquivalentOperationError indicates a legacy operation has no counterpart
// in the new spec.
type NoEquivalentOperationError struct {
	Method string
	Path   string
}

func (e *NoEquivalentOperationError) Error() string {
	return fmt.Sprintf("no equivalent operation in new spec for %s %s", e.Method, e.Path)
}

// IncompleteMappingError indicates a resolved operation carries neither an
// operation ID nor an external docs URL, so no TechDocs URL can be built.
type IncompleteMappingError struct {
	Method string
	Path   string
}

func (e *IncompleteMappingError) Error() string {
	if e.Method == "" && e.Path == "" {
		return "resolved mapping has no operation ID or docs URL"
	}
	return fmt.Sprintf("no operation ID or docs URL for %s %s", e.Method, e.Path)
}
