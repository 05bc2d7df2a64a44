package iir

import (
	"errors"
	"fmt"
)

// MaxTaps bounds the length of either coefficient vector.
const MaxTaps = 1 << 20

var (
	// ErrAllocation reports that the buffers of a filter could not be
	// obtained: an empty feedforward vector or a vector longer than MaxTaps.
	ErrAllocation = errors.New("iir: cannot allocate filter buffers")
	// ErrDesign reports a failed coefficient design or an invalid design
	// parameter.
	ErrDesign = errors.New("iir: filter design failed")
	// ErrResponseSize reports an unusable frequency response grid size.
	ErrResponseSize = errors.New("iir: invalid frequency response size")
)

func designError(design string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDesign, design, err)
}
