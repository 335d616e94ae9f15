package ioformat

import "errors"

// ErrOutputFailure indicates the JSON output path could not be opened or
// written. Fatal.
var ErrOutputFailure = errors.New("ioformat: cannot write JSON output")
