// Package butterworth computes direct-form Butterworth transfer functions.
//
// Each response is described by three pieces that the caller combines:
// a feedback (denominator) vector whose leading coefficient is 1, an integer
// feedforward (numerator) vector, and a scaling factor that normalizes the
// passband gain to unity. The designed filter is
//
//	H(z) = scale * B(z) / A(z)
//
// Poles are placed with the bilinear transform. Frequencies are normalized to
// the Nyquist frequency, so cutoffs lie in the open interval (0, 1).
//
// Unlike dsp/filter/design/pass, which factors filters into biquad cascades,
// this package returns a single high-order polynomial for use with
// dsp/filter/iir. High orders (above ~10) lose precision in this form.
package butterworth
