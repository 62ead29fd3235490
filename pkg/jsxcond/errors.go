package jsxcond

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal conditions. A fatal error aborts
// the whole pass for the current file; no partial output is produced.
var (
	// ErrMissingTest reports a Condition or Case element without its
	// mandatory test attribute.
	ErrMissingTest = errors.New("missing test attribute")

	// ErrInvalidSwitchChild reports a Switch child that is neither a
	// Case element nor insignificant whitespace.
	ErrInvalidSwitchChild = errors.New("switch children must be case elements")
)

// TransformError is a fatal transform error carrying the offending
// element's tag and source location.
type TransformError struct {
	Err error
	Tag string
	Pos Pos
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%d:%d: <%s>: %v", e.Pos.Line, e.Pos.Col, e.Tag, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

func transformErr(err error, tag string, pos Pos) error {
	return &TransformError{Err: err, Tag: tag, Pos: pos}
}
