package state

import "errors"

// ErrContradiction indicates Assign conflicted with an already-decided edge
// or violated a local invariant; the State must be dropped by the caller.
var ErrContradiction = errors.New("state: contradiction")
