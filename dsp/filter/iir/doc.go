// Package iir provides a generic direct-form recursive filter runtime and the
// designs that feed it.
//
// A [Filter] evaluates the difference equation
//
//	y[n] = sum_{i=0}^{M-1} b[i]*x[n-i] - sum_{i=1}^{N-1} a[i]*y[n-i]
//
// one complex sample at a time, where b is the feedforward vector (M >= 1
// taps) and a the feedback vector (N >= 0 taps). a[0] is taken to be 1 and is
// never applied; callers passing their own feedback vectors must normalize
// them first. A filter without feedback is a pure FIR filter and carries no
// output history at all.
//
// Every output is multiplied by a runtime gain (1 by default) that can be
// changed at any time with [Filter.SetGain]. [Filter.Last] reports the most
// recent output scaled by the current gain, so changing the gain rescales
// the reported value without refeeding.
//
// Design constructors compute coefficients with dsp/filter/design/butterworth
// and dsp/filter/design/taps and hand them to the filter without copying:
//
//	lp, err := iir.NewButterworthLowpass(4, 0.25)
//	rrc, err := iir.NewRootRaisedCosine(65, 8, 0.35)
//	bw, err := iir.NewBrickwallLowpass(63, 0.2, taps.WithWindow(window.TypeBlackman))
//
// Frequencies are normalized to Nyquist (1 = half the sample rate).
//
// A Filter is not safe for concurrent use. Independent filters share no state.
package iir
