package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrWorkflowNotFound indicates a workflow was not found by the given identifier.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrInvalidCatalog indicates the catalog source as a whole is unusable:
	// not valid JSON, or valid JSON that is not an array of objects. There is
	// no partial-catalog state; the load either fully succeeds or fails.
	ErrInvalidCatalog = errors.New("invalid catalog source")
)

// CatalogError wraps catalog-source errors with additional context.
type CatalogError struct {
	Op   string // Operation being performed (e.g., "LoadRaw")
	Path string // Source path if applicable
	Err  error  // Underlying error
}

func (e *CatalogError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s failed for catalog source %s: %v", e.Op, e.Path, e.Err)
	}

	return fmt.Sprintf("%s failed for catalog source: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func (e *CatalogError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewCatalogError creates a new catalog error with context.
func NewCatalogError(op, path string, err error) *CatalogError {
	return &CatalogError{Op: op, Path: path, Err: err}
}

// IsWorkflowNotFound checks if an error indicates a workflow was not found.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}

// IsInvalidCatalog checks if an error indicates an unusable catalog source.
func IsInvalidCatalog(err error) bool {
	return errors.Is(err, ErrInvalidCatalog)
}
