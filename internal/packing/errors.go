package packing

import "errors"

var (
	// ErrInvalidDimension is returned when a container dimension or cube edge
	// length is not a positive integer.
	ErrInvalidDimension = errors.New("packing: dimensions must be positive integers")
	// ErrCapacityExceeded is returned when a commit would push the filled
	// volume past the container volume. A caller that checks Fits first never
	// sees it.
	ErrCapacityExceeded = errors.New("packing: cube volume exceeds remaining container capacity")
	// ErrAlreadyPlaced is returned when a cube that has a position is
	// committed a second time.
	ErrAlreadyPlaced = errors.New("packing: cube is already placed")
	// ErrInvalidCubeCounts is returned when a cube descriptor contains a
	// negative count.
	ErrInvalidCubeCounts = errors.New("packing: cube counts must be non-negative integers")
	// ErrDescriptorTooLarge is returned when a cube descriptor exceeds the
	// supported number of size classes or total cubes.
	ErrDescriptorTooLarge = errors.New("packing: cube descriptor exceeds supported size")
)
