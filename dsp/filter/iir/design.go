package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/design/butterworth"
	"github.com/cwbudde/algo-iir/dsp/filter/design/taps"
	"github.com/cwbudde/algo-vecmath"
)

// butterworthDesign gathers the three parts of a Butterworth transfer
// function. Feedforward taps are multiplied by the scaling factor before
// the vectors are handed to the filter, so the runtime gain stays 1.
type butterworthDesign struct {
	name        string
	order       int
	band        bool
	feedback    func() ([]float64, error)
	feedforward func() ([]float64, error)
	scale       func() (float64, error)
}

// size returns the coefficient vector length and the largest order whose
// vectors fit in MaxTaps. Band transforms double the order.
func (d butterworthDesign) size() (n, maxOrder int) {
	if d.band {
		return 2*d.order + 1, (MaxTaps - 1) / 2
	}
	return d.order + 1, MaxTaps - 1
}

func (d butterworthDesign) build() (*Filter, error) {
	size, maxOrder := d.size()
	if d.order > maxOrder {
		return nil, fmt.Errorf("%w: %s: order %d exceeds %d", ErrAllocation, d.name, d.order, maxOrder)
	}

	a, err := d.feedback()
	if err != nil {
		return nil, designError(d.name, err)
	}

	b, err := d.feedforward()
	if err != nil {
		return nil, designError(d.name, err)
	}

	sf, err := d.scale()
	if err != nil {
		return nil, designError(d.name, err)
	}

	if len(a) != size || len(b) != size {
		return nil, fmt.Errorf("%w: %s: got %d feedback and %d feedforward taps, want %d",
			ErrDesign, d.name, len(a), len(b), size)
	}

	vecmath.ScaleBlockInPlace(b, sf)

	return adopt(a, b)
}

// NewButterworthLowpass designs an order-n Butterworth low-pass with cutoff
// fc. Both coefficient vectors have order+1 taps.
func NewButterworthLowpass(order int, fc float64) (*Filter, error) {
	return butterworthDesign{
		name:        "butterworth low-pass",
		order:       order,
		feedback:    func() ([]float64, error) { return butterworth.LowpassFeedback(order, fc) },
		feedforward: func() ([]float64, error) { return butterworth.LowpassFeedforward(order) },
		scale:       func() (float64, error) { return butterworth.LowpassScale(order, fc) },
	}.build()
}

// NewButterworthHighpass designs an order-n Butterworth high-pass with
// cutoff fc. Both coefficient vectors have order+1 taps.
func NewButterworthHighpass(order int, fc float64) (*Filter, error) {
	return butterworthDesign{
		name:        "butterworth high-pass",
		order:       order,
		feedback:    func() ([]float64, error) { return butterworth.HighpassFeedback(order, fc) },
		feedforward: func() ([]float64, error) { return butterworth.HighpassFeedforward(order) },
		scale:       func() (float64, error) { return butterworth.HighpassScale(order, fc) },
	}.build()
}

// NewButterworthBandpass designs an order-n Butterworth band-pass between
// f1 and f2 (f1 < f2). The band transform doubles the order, so both
// coefficient vectors have 2*order+1 taps.
func NewButterworthBandpass(order int, f1, f2 float64) (*Filter, error) {
	return butterworthDesign{
		name:        "butterworth band-pass",
		order:       order,
		band:        true,
		feedback:    func() ([]float64, error) { return butterworth.BandpassFeedback(order, f1, f2) },
		feedforward: func() ([]float64, error) { return butterworth.BandpassFeedforward(order) },
		scale:       func() (float64, error) { return butterworth.BandpassScale(order, f1, f2) },
	}.build()
}

// NewButterworthBandstop designs an order-n Butterworth band-stop between
// f1 and f2 (f1 < f2) with 2*order+1 taps per vector.
func NewButterworthBandstop(order int, f1, f2 float64) (*Filter, error) {
	return butterworthDesign{
		name:        "butterworth band-stop",
		order:       order,
		band:        true,
		feedback:    func() ([]float64, error) { return butterworth.BandstopFeedback(order, f1, f2) },
		feedforward: func() ([]float64, error) { return butterworth.BandstopFeedforward(order, f1, f2) },
		scale:       func() (float64, error) { return butterworth.BandstopScale(order, f1, f2) },
	}.build()
}

// sampleTaps allocates n taps and lets fill sample a response into them.
func sampleTaps(design string, n int, fill func(h []float64) error) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %s: tap count must be >= 1: %d", ErrDesign, design, n)
	}
	if n > MaxTaps {
		return nil, fmt.Errorf("%w: %s: %d taps exceeds %d", ErrAllocation, design, n, MaxTaps)
	}

	h := make([]float64, n)
	if err := fill(h); err != nil {
		return nil, designError(design, err)
	}

	return h, nil
}

func newSampledFIR(design string, n int, fill func(h []float64) error) (*Filter, error) {
	b, err := sampleTaps(design, n, fill)
	if err != nil {
		return nil, err
	}

	return adopt(nil, b)
}

// NewRootRaisedCosine designs an n-tap root-raised-cosine pulse-shaping
// filter for a symbol period of period samples and roll-off beta in [0, 1].
// The pulse is sampled as is, without further scaling.
func NewRootRaisedCosine(n int, period, beta float64) (*Filter, error) {
	return newSampledFIR("root-raised-cosine", n, func(h []float64) error {
		return taps.RootRaisedCosine(h, period, beta)
	})
}

// NewRaisedCosine designs an n-tap raised-cosine filter.
func NewRaisedCosine(n int, period, beta float64) (*Filter, error) {
	return newSampledFIR("raised-cosine", n, func(h []float64) error {
		return taps.RaisedCosine(h, period, beta)
	})
}

// NewBrickwallLowpass designs an n-tap windowed ideal low-pass with cutoff
// fc. The taper defaults to Hamming and can be changed with taps.WithWindow.
func NewBrickwallLowpass(n int, fc float64, opts ...taps.Option) (*Filter, error) {
	return newSampledFIR("brickwall low-pass", n, func(h []float64) error {
		return taps.BrickwallLowpass(h, fc, opts...)
	})
}

// NewBrickwallBandpass designs an n-tap windowed ideal band-pass of total
// width bandwidth centred on center.
func NewBrickwallBandpass(n int, bandwidth, center float64, opts ...taps.Option) (*Filter, error) {
	return newSampledFIR("brickwall band-pass", n, func(h []float64) error {
		return taps.BrickwallBandpass(h, bandwidth, center, opts...)
	})
}
