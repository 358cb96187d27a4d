package include

import "errors"

// ErrNoOrigin is returned when a document loaded without an origin includes a file.
var ErrNoOrigin = errors.New("cannot decide the target directory because no origin path is given")

// ErrNoPath is returned when the tagged value is empty.
var ErrNoPath = errors.New("given no path")
