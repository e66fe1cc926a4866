package graph

import "errors"

// ErrNilGrid indicates Build was called with a nil grid.Grid.
var ErrNilGrid = errors.New("graph: grid must not be nil")
