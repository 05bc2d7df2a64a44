package testutil

import (
	"math"
	"math/rand"
)

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed for
// reproducibility. Both parts are uniform in [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Tone generates exp(j*pi*f*n), a complex exponential at normalized
// frequency f (1 = Nyquist).
func Tone(f float64, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		s, c := math.Sincos(math.Pi * f * float64(i))
		out[i] = complex(c, s)
	}
	return out
}

// Convolve returns the first len(x) samples of the linear convolution of x
// with the real kernel h.
func Convolve(x []complex128, h []float64) []complex128 {
	out := make([]complex128, len(x))
	for n := range out {
		for k, c := range h {
			if n-k < 0 {
				break
			}
			out[n] += complex(c, 0) * x[n-k]
		}
	}
	return out
}
