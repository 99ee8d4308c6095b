package postgres

import "github.com/pkg/errors"

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("row not found")
