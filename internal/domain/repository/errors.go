package repository

import "errors"

// ErrNotFound is returned by every repository when the requested row does not
// exist. Services wrap it into aggregate-specific errors.
var ErrNotFound = errors.New("not found")
