package aoc

import "errors"

// Errors returned by the geometry and search helpers. Call sites wrap
// them with the offending value; match with errors.Is.
var (
	// ErrShape is returned by NewGrid when rows differ in length.
	ErrShape = errors.New("aoc: ragged grid")

	// ErrOutOfBounds is returned by Grid.At for points outside the grid.
	ErrOutOfBounds = errors.New("aoc: point out of bounds")

	// ErrInvalidRange is returned by BinarySearch when lo > hi.
	ErrInvalidRange = errors.New("aoc: invalid search range")

	// ErrInvalidInterval is returned by MergeIntervals for an interval with Lo > Hi.
	ErrInvalidInterval = errors.New("aoc: invalid interval")

	// ErrNoDirection is returned by Table.Get for an unknown key.
	ErrNoDirection = errors.New("aoc: no such direction")
)
