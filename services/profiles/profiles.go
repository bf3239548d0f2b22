package profiles

import "errors"

// ErrProfileNotFound is returned when the requested profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")
