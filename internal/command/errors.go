package command

import "errors"

// ErrNotImplemented is returned by Register: translating human-readable key
// descriptions into key codes is not supported.
var ErrNotImplemented = errors.New("not implemented")
