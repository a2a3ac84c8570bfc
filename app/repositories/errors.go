package repositories

import "errors"

// ErrNotFound is returned by update, toggle and delete operations when the
// target id does not exist. Read paths signal a miss with a nil record
// instead.
var ErrNotFound = errors.New("record not found")
