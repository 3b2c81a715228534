package service

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem that keeps a source from becoming a
// schedule.
type ValidationError struct {
	Path     string
	Problems []string
}

func newValidationError(path string, errs []error) *ValidationError {
	problems := make([]string, len(errs))
	for i, err := range errs {
		problems[i] = err.Error()
	}
	return &ValidationError{Path: path, Problems: problems}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid schedule %s: %s", e.Path, strings.Join(e.Problems, "; "))
}
