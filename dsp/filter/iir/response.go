package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// polyAt evaluates sum_k c[k]*e^{-jwk}, with c[0] replaced by c0.
func polyAt(c []float64, c0, w float64) complex128 {
	sum := complex(c0, 0)
	for k := 1; k < len(c); k++ {
		sum += complex(c[k], 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return sum
}

// Response returns the complex frequency response, gain included, at the
// normalized frequency freq (1 = Nyquist).
func (f *Filter) Response(freq float64) complex128 {
	w := math.Pi * freq

	var num complex128
	if len(f.b) > 0 {
		num = polyAt(f.b, f.b[0], w)
	}

	den := complex(1, 0)
	if f.rec != nil {
		den = polyAt(f.rec.a, 1, w)
	}

	return complex(f.gain, 0) * num / den
}

// MagnitudeDB returns the magnitude response in dB at the normalized
// frequency freq.
func (f *Filter) MagnitudeDB(freq float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freq)))
}

// BinFrequency returns the normalized frequency of bin k on an n-point grid.
func BinFrequency(k, n int) float64 {
	return 2 * float64(k) / float64(n)
}

// FrequencyResponse evaluates the response on n equally spaced frequencies
// covering one full turn of the unit circle; bin k lies at BinFrequency(k, n).
// n must be a power of two no shorter than either coefficient vector.
func (f *Filter) FrequencyResponse(n int) ([]complex128, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d is not a power of two", ErrResponseSize, n)
	}
	if n < len(f.b) || (f.rec != nil && n < len(f.rec.a)) {
		return nil, fmt.Errorf("%w: %d bins shorter than the coefficient vectors", ErrResponseSize, n)
	}
	if len(f.b) == 0 {
		return nil, fmt.Errorf("%w: filter has been released", ErrResponseSize)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("iir: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, n)
	for i, c := range f.b {
		padded[i] = complex(c, 0)
	}

	num := make([]complex128, n)
	if err := plan.Forward(num, padded); err != nil {
		return nil, fmt.Errorf("iir: failed to transform feedforward taps: %w", err)
	}

	if f.rec != nil {
		clear(padded)
		padded[0] = 1
		for i := 1; i < len(f.rec.a); i++ {
			padded[i] = complex(f.rec.a[i], 0)
		}

		den := make([]complex128, n)
		if err := plan.Forward(den, padded); err != nil {
			return nil, fmt.Errorf("iir: failed to transform feedback taps: %w", err)
		}

		for k := range num {
			num[k] /= den[k]
		}
	}

	g := complex(f.gain, 0)
	for k := range num {
		num[k] *= g
	}

	return num, nil
}
