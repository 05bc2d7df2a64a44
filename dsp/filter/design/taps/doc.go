// Package taps samples FIR impulse responses into caller-provided buffers.
//
// Pulse shapes ([RootRaisedCosine], [RaisedCosine]) are sampled directly at
// a symbol period given in samples. Brickwall responses ([BrickwallLowpass],
// [BrickwallBandpass]) are the inverse transforms of ideal rectangular
// frequency responses, truncated to the buffer length and tapered with a
// window (Hamming unless [WithWindow] says otherwise).
//
// Taps are centred on (len(h)-1)/2, so every design here is symmetric and
// linear-phase. Frequencies are normalized to Nyquist.
package taps
