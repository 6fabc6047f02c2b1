// core/sgff/errors.go
package sgff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader means the fixed 19-byte prefix did not match.
	ErrInvalidHeader = errors.New("sgff: invalid header")
	// ErrTruncatedBlock means a declared block length ran past the
	// end of the input.
	ErrTruncatedBlock = errors.New("sgff: truncated block")
	// ErrTruncatedSequence means a sequence body was shorter than its
	// declared lengths require.
	ErrTruncatedSequence = errors.New("sgff: truncated sequence")
	// ErrUnknownSequenceType means a history entry carried a
	// sequence-type tag outside the known set.
	ErrUnknownSequenceType = errors.New("sgff: unknown sequence type tag")
	// ErrNestingTooDeep means the nested-container recursion budget
	// was exhausted.
	ErrNestingTooDeep = errors.New("sgff: nesting too deep")
	// ErrMissingTrace means a trace container held no embedded trace.
	ErrMissingTrace = errors.New("sgff: trace container has no trace block")
)

// ParseError identifies the failing block by type id and byte offset.
// BlockType is -1 for header failures.
type ParseError struct {
	Offset    int
	BlockType int
	Err       error
}

func (e *ParseError) Error() string {
	if e.BlockType < 0 {
		return fmt.Sprintf("parse at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("parse block type %d at offset %d: %v", e.BlockType, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SerializeError identifies the block whose re-encoding failed. No
// partial output is ever produced.
type SerializeError struct {
	BlockType int
	Err       error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize block type %d: %v", e.BlockType, e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }
