package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound matches every *NotFoundError.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrInheritanceCycle is returned when a parent chain loops.
	ErrInheritanceCycle = errors.New("template inheritance cycle")
)

// NotFoundError reports a template name that does not resolve to a file.
type NotFoundError struct {
	Name string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to find template %q (looked into %q)", e.Name, e.Path)
}

// Is makes errors.Is(err, ErrTemplateNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}
