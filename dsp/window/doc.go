// Package window generates the tapers applied to truncated ideal impulse
// responses during FIR tap design.
//
// Windows are generated in symmetric form by default, which keeps designed
// FIR filters linear-phase. [WithPeriodic] selects the periodic form.
package window
