package window

import (
	"errors"
	"fmt"
)

var errUnknownType = errors.New("window: unknown window type")

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateAlpha(t Type, alpha float64) error {
	switch t {
	case TypeKaiser:
		if alpha < 0 {
			return fmt.Errorf("kaiser beta must be >= 0: %f", alpha)
		}
	case TypeTukey:
		if alpha < 0 || alpha > 1 {
			return fmt.Errorf("tukey alpha must be in [0,1]: %f", alpha)
		}
	}
	return nil
}
