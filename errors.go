package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrCorrupted signals a violation of the structural tree invariants.
	ErrCorrupted = errors.New("btree: tree invariants violated")
)
