package workbook

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 indicates a worksheet member whose payload is not valid
// UTF-8 text.
var ErrInvalidUTF8 = errors.New("worksheet member is not valid UTF-8")

// ProcessError describes a failure while processing a workbook archive.
type ProcessError struct {
	Op   string // "open", "create", "read", "decode", "write", "finalize"
	Path string // file path or archive member involved
	Err  error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
