package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatchingBlock matches every *NoMatchingBlockError.
var ErrNoMatchingBlock = errors.New("no matching block")

// NoMatchingBlockError is returned when no block of the specificity chain
// exists. Probed lists the block names tried, most specific first.
type NoMatchingBlockError struct {
	Component string
	Probed    []string
}

func (e *NoMatchingBlockError) Error() string {
	return fmt.Sprintf(`unable to render the action component %q as none of the following blocks exist: "%s"`,
		e.Component, strings.Join(e.Probed, `", "`))
}

// Is makes errors.Is(err, ErrNoMatchingBlock) true.
func (e *NoMatchingBlockError) Is(target error) bool {
	return target == ErrNoMatchingBlock
}
