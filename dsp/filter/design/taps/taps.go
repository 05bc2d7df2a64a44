package taps

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmpty reports a tap buffer with no room for a single tap.
	ErrEmpty = errors.New("taps: buffer must hold at least one tap")
	// ErrInvalidParameter reports a design parameter outside its domain.
	ErrInvalidParameter = errors.New("taps: invalid design parameter")
	// ErrZeroGain reports taps that cannot be normalized.
	ErrZeroGain = errors.New("taps: response has zero gain")
)

// singularityTol bounds how close |4*beta*t/T| (or |2*beta*t/T|) may get to 1
// before the analytic limit replaces the closed form.
const singularityTol = 1e-9

// Option configures brickwall designs.
type Option func(*config)

type config struct {
	window     window.Type
	windowOpts []window.Option
	normalize  bool
}

func defaultConfig() config {
	return config{window: window.TypeHamming}
}

// WithWindow selects the taper applied to brickwall taps. window.TypeRectangular
// leaves the truncated ideal response untouched.
func WithWindow(t window.Type, opts ...window.Option) Option {
	copyOpts := append([]window.Option(nil), opts...)

	return func(c *config) {
		c.window = t
		c.windowOpts = copyOpts
	}
}

// WithNormalize rescales brickwall taps to exactly unit gain at the passband
// centre (DC for low-pass, the centre frequency for band-pass).
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

func position(i, n int) float64 {
	return float64(i) - float64(n-1)/2
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

func validatePulse(h []float64, period, beta float64) error {
	if len(h) < 1 {
		return ErrEmpty
	}
	if !(period > 0) || math.IsInf(period, 0) {
		return fmt.Errorf("%w: symbol period %g must be > 0", ErrInvalidParameter, period)
	}
	if !(beta >= 0 && beta <= 1) {
		return fmt.Errorf("%w: roll-off %g not in [0, 1]", ErrInvalidParameter, beta)
	}
	return nil
}

// RootRaisedCosine fills h with the root-raised-cosine pulse for a symbol
// period of period samples and roll-off beta. The centre tap is
// 1 - beta + 4*beta/pi; with beta = 0 the pulse is sinc(t/period).
func RootRaisedCosine(h []float64, period, beta float64) error {
	if err := validatePulse(h, period, beta); err != nil {
		return err
	}

	for i := range h {
		r := position(i, len(h)) / period
		f := 4 * beta * r

		switch {
		case r == 0:
			h[i] = 1 - beta + 4*beta/math.Pi
		case beta > 0 && math.Abs(math.Abs(f)-1) < singularityTol:
			q := math.Pi / (4 * beta)
			h[i] = beta / math.Sqrt2 * ((1+2/math.Pi)*math.Sin(q) + (1-2/math.Pi)*math.Cos(q))
		default:
			num := math.Sin(math.Pi*r*(1-beta)) + f*math.Cos(math.Pi*r*(1+beta))
			h[i] = num / (math.Pi * r * (1 - f*f))
		}
	}

	return nil
}

// RaisedCosine fills h with the full raised-cosine pulse, the convolution of
// two root-raised-cosine pulses. Its zero crossings fall on multiples of
// period.
func RaisedCosine(h []float64, period, beta float64) error {
	if err := validatePulse(h, period, beta); err != nil {
		return err
	}

	for i := range h {
		r := position(i, len(h)) / period
		f := 2 * beta * r

		if beta > 0 && math.Abs(math.Abs(f)-1) < singularityTol {
			h[i] = math.Pi / 4 * sinc(1/(2*beta))
			continue
		}

		h[i] = sinc(r) * math.Cos(math.Pi*beta*r) / (1 - f*f)
	}

	return nil
}

// BrickwallLowpass fills h with a windowed ideal low-pass of cutoff fc.
func BrickwallLowpass(h []float64, fc float64, opts ...Option) error {
	if len(h) < 1 {
		return ErrEmpty
	}
	if !(fc > 0 && fc <= 1) {
		return fmt.Errorf("%w: cutoff %g not in (0, 1]", ErrInvalidParameter, fc)
	}

	cfg := applyOptions(opts)

	for i := range h {
		h[i] = fc * sinc(fc*position(i, len(h)))
	}

	return finish(h, 0, cfg)
}

// BrickwallBandpass fills h with a windowed ideal band-pass of total width
// bandwidth centred on center: the low-pass prototype of cutoff bandwidth/2
// shifted up by modulation with 2*cos(pi*center*t).
func BrickwallBandpass(h []float64, bandwidth, center float64, opts ...Option) error {
	if len(h) < 1 {
		return ErrEmpty
	}
	if !(bandwidth > 0 && bandwidth <= 2) {
		return fmt.Errorf("%w: bandwidth %g not in (0, 2]", ErrInvalidParameter, bandwidth)
	}
	if !(center >= 0 && center <= 1) {
		return fmt.Errorf("%w: centre %g not in [0, 1]", ErrInvalidParameter, center)
	}

	cfg := applyOptions(opts)
	half := bandwidth / 2

	for i := range h {
		t := position(i, len(h))
		h[i] = 2 * half * sinc(half*t) * math.Cos(math.Pi*center*t)
	}

	return finish(h, center, cfg)
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func finish(h []float64, f float64, cfg config) error {
	if err := window.Apply(cfg.window, h, cfg.windowOpts...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	if cfg.normalize {
		return NormalizeAt(h, f)
	}

	return nil
}

// Normalize scales h so that its DC gain (the tap sum) is 1.
func Normalize(h []float64) error {
	sum := vecmath.Sum(h)
	if sum == 0 || math.IsNaN(sum) {
		return ErrZeroGain
	}

	vecmath.ScaleBlockInPlace(h, 1/sum)

	return nil
}

// GainAt returns the amplitude response of the symmetric taps h at the
// normalized frequency f. For symmetric taps it is real.
func GainAt(h []float64, f float64) float64 {
	if f == 0 {
		return vecmath.Sum(h)
	}

	basis := make([]float64, len(h))
	for i := range basis {
		basis[i] = math.Cos(math.Pi * f * position(i, len(h)))
	}

	return vecmath.DotProduct(h, basis)
}

// NormalizeAt scales symmetric taps h to unit gain at the normalized
// frequency f.
func NormalizeAt(h []float64, f float64) error {
	if f == 0 {
		return Normalize(h)
	}

	g := GainAt(h, f)
	if g == 0 || math.IsNaN(g) {
		return ErrZeroGain
	}

	vecmath.ScaleBlockInPlace(h, 1/math.Abs(g))

	return nil
}
