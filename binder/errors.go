package binder

import "errors"

// ErrInvalidPath indicates a malformed binding target or an unparsable
// path parameter value.
var ErrInvalidPath = errors.New("binder: invalid path binding")
