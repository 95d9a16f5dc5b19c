package chainstorage

import "errors"

// ErrNotFound is returned when the requested chain data does not exist.
var ErrNotFound = errors.New("chain data not found")
