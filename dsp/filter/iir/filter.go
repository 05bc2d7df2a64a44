package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/ring"
)

// Filter is a direct-form recursive filter with complex state and real
// coefficients. It owns its coefficient vectors and history rings.
type Filter struct {
	b    []float64
	x    *ring.Ring[complex128]
	rec  *recursion
	gain float64
	last complex128
}

// recursion is the feedback half of a filter. It is nil for FIR filters.
type recursion struct {
	a []float64
	y *ring.Ring[complex128]
}

// New creates a filter from copies of feedback and feedforward.
//
// feedback may be empty, which yields a pure FIR filter. Otherwise
// feedback[0] must be 1; it is not checked and never applied. feedforward
// must hold at least one tap.
func New(feedback, feedforward []float64) (*Filter, error) {
	if err := validateSizes(len(feedback), len(feedforward)); err != nil {
		return nil, err
	}

	var a []float64
	if len(feedback) > 0 {
		a = append([]float64(nil), feedback...)
	}

	return adopt(a, append([]float64(nil), feedforward...))
}

// NewFIR creates a pure FIR filter from a copy of feedforward.
func NewFIR(feedforward []float64) (*Filter, error) {
	return New(nil, feedforward)
}

// adopt builds a filter that takes ownership of a and b.
func adopt(a, b []float64) (*Filter, error) {
	if err := validateSizes(len(a), len(b)); err != nil {
		return nil, err
	}

	x, err := ring.New[complex128](len(b))
	if err != nil {
		return nil, fmt.Errorf("%w: input history: %w", ErrAllocation, err)
	}

	f := &Filter{b: b, x: x, gain: 1}

	if len(a) > 0 {
		y, err := ring.New[complex128](len(a))
		if err != nil {
			return nil, fmt.Errorf("%w: output history: %w", ErrAllocation, err)
		}

		f.rec = &recursion{a: a, y: y}
	}

	return f, nil
}

func validateSizes(ySize, xSize int) error {
	if xSize < 1 {
		return fmt.Errorf("%w: feedforward vector is empty", ErrAllocation)
	}
	if xSize > MaxTaps {
		return fmt.Errorf("%w: %d feedforward taps exceeds %d", ErrAllocation, xSize, MaxTaps)
	}
	if ySize > MaxTaps {
		return fmt.Errorf("%w: %d feedback taps exceeds %d", ErrAllocation, ySize, MaxTaps)
	}
	return nil
}

func scale(c float64, z complex128) complex128 {
	return complex(c*real(z), c*imag(z))
}

// Feed filters one input sample and returns the output multiplied by the
// current gain.
func (f *Filter) Feed(x complex128) complex128 {
	if f.x == nil {
		panic("iir: Feed on a released filter")
	}

	f.x.Push(x)

	var y complex128
	for i, c := range f.b {
		y += scale(c, f.x.At(i))
	}

	if r := f.rec; r != nil {
		// a[0] is the implicit unit coefficient on y[n].
		for i := 1; i < len(r.a); i++ {
			y -= scale(r.a[i], r.y.At(i-1))
		}

		r.y.Push(y)
	}

	f.last = y

	return scale(f.gain, y)
}

// Last returns the most recent output multiplied by the current gain.
func (f *Filter) Last() complex128 {
	return scale(f.gain, f.last)
}

// SetGain replaces the output gain. Zero and negative gains are allowed.
func (f *Filter) SetGain(gain float64) {
	f.gain = gain
}

// Gain returns the output gain.
func (f *Filter) Gain() float64 {
	return f.gain
}

// ProcessSample filters one real sample and returns the real part of the
// output.
func (f *Filter) ProcessSample(x float64) float64 {
	return real(f.Feed(complex(x, 0)))
}

// ProcessBlock filters buf in-place.
func (f *Filter) ProcessBlock(buf []complex128) {
	for i, x := range buf {
		buf[i] = f.Feed(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []complex128) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.Feed(x)
	}
}

// Reset clears both histories and the last output. Coefficients and gain
// are kept.
func (f *Filter) Reset() {
	if f.x != nil {
		f.x.Reset()
	}

	if f.rec != nil {
		f.rec.y.Reset()
	}

	f.last = 0
}

// Release drops the coefficient vectors and histories. The filter must not
// be fed afterwards; releasing twice is harmless.
func (f *Filter) Release() {
	f.b = nil
	f.x = nil
	f.rec = nil
}

// Clone returns an independent deep copy of f, including its state.
func (f *Filter) Clone() *Filter {
	c := &Filter{
		b:    append([]float64(nil), f.b...),
		gain: f.gain,
		last: f.last,
	}

	if f.x != nil {
		c.x = f.x.Clone()
	}

	if f.rec != nil {
		c.rec = &recursion{
			a: append([]float64(nil), f.rec.a...),
			y: f.rec.y.Clone(),
		}
	}

	return c
}

// Feedforward returns a copy of the feedforward coefficients.
func (f *Filter) Feedforward() []float64 {
	return append([]float64(nil), f.b...)
}

// Feedback returns a copy of the feedback coefficients, or nil for a pure
// FIR filter.
func (f *Filter) Feedback() []float64 {
	if f.rec == nil {
		return nil
	}

	return append([]float64(nil), f.rec.a...)
}

// IsRecursive reports whether the filter has a feedback section.
func (f *Filter) IsRecursive() bool {
	return f.rec != nil
}

// Order returns the filter order, the longer coefficient vector length
// minus one.
func (f *Filter) Order() int {
	n := len(f.b)
	if f.rec != nil && len(f.rec.a) > n {
		n = len(f.rec.a)
	}

	return n - 1
}

// ImpulseResponse returns the first n outputs of a fresh copy of the filter
// driven by a unit impulse. f itself is not modified. It returns nil for
// n <= 0.
func (f *Filter) ImpulseResponse(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	c := f.Clone()
	c.Reset()

	out := make([]complex128, n)
	for i := range out {
		var x complex128
		if i == 0 {
			x = 1
		}
		out[i] = c.Feed(x)
	}

	return out
}
