// internal/export/brokenpipe.go
package export

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err came from writing into a closed
// pipe (e.g. `sgffp parse file | head`), which should not be treated
// as a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
