package iir

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-iir/dsp/filter/design/butterworth"
	"github.com/cwbudde/algo-iir/dsp/filter/design/taps"
	"github.com/cwbudde/algo-iir/dsp/window"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestButterworthLowpassSecondOrder(t *testing.T) {
	f, err := NewButterworthLowpass(2, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	b := f.Feedforward()
	a := f.Feedback()

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("sizes: feedback %d feedforward %d, want 3 and 3", len(a), len(b))
	}

	if b[0] != b[2] {
		t.Errorf("feedforward not symmetric: %v", b)
	}
	if math.Abs(b[1]-2*b[0]) > eps {
		t.Errorf("b[1]=%v, want 2*b[0]=%v", b[1], 2*b[0])
	}

	wantB := []float64{0.0674552738890719, 0.1349105477781438, 0.0674552738890719}
	wantA := []float64{1, -1.142980502539901, 0.41280159809618855}

	if diff := cmp.Diff(wantB, b, approx); diff != "" {
		t.Errorf("feedforward (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantA, a, approx); diff != "" {
		t.Errorf("feedback (-want +got):\n%s", diff)
	}

	if f.Gain() != 1 {
		t.Errorf("design scaling must be baked into the taps, gain=%v", f.Gain())
	}
}

func TestButterworthLowpassSizes(t *testing.T) {
	for order := 1; order <= 8; order++ {
		f, err := NewButterworthLowpass(order, 0.3)
		if err != nil {
			t.Fatal(err)
		}

		if len(f.Feedforward()) != order+1 || len(f.Feedback()) != order+1 {
			t.Fatalf("order %d: feedforward %d feedback %d", order, len(f.Feedforward()), len(f.Feedback()))
		}
	}
}

func TestButterworthLowpassStepSettlesToOne(t *testing.T) {
	f, err := NewButterworthLowpass(4, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	var y complex128
	for range 2000 {
		y = f.Feed(1)
	}

	testutil.RequireComplexNearlyEqual(t, y, 1, 1e-9)
}

func TestButterworthLowpassRejectsNyquistTone(t *testing.T) {
	f, err := NewButterworthLowpass(4, 0.2)
	if err != nil {
		t.Fatal(err)
	}

	out := feedAll(f, testutil.Tone(1, 500))
	for _, y := range out[400:] {
		if cmplx.Abs(y) > 1e-3 {
			t.Fatalf("steady-state Nyquist output %v", y)
		}
	}
}

func TestButterworthHighpass(t *testing.T) {
	f, err := NewButterworthHighpass(3, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	if g := cmplx.Abs(f.Response(1)); math.Abs(g-1) > 1e-9 {
		t.Errorf("Nyquist gain %v, want 1", g)
	}
	if g := cmplx.Abs(f.Response(0)); g > 1e-12 {
		t.Errorf("DC gain %v, want 0", g)
	}
}

func TestButterworthBandpass(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4} {
		f, err := NewButterworthBandpass(order, 0.2, 0.4)
		if err != nil {
			t.Fatal(err)
		}

		b := f.Feedforward()
		if len(b) != 2*order+1 || len(f.Feedback()) != 2*order+1 {
			t.Fatalf("order %d: feedforward %d feedback %d", order, len(b), len(f.Feedback()))
		}

		// Every feedforward tap carries the scaling factor, including the
		// upper half of the doubled-order vector.
		raw, _ := butterworth.BandpassFeedforward(order)
		sf, _ := butterworth.BandpassScale(order, 0.2, 0.4)
		for i := range raw {
			raw[i] *= sf
		}
		if diff := cmp.Diff(raw, b, approx); diff != "" {
			t.Errorf("order %d feedforward (-want +got):\n%s", order, diff)
		}

		for _, edge := range []float64{0.2, 0.4} {
			if g := cmplx.Abs(f.Response(edge)); math.Abs(g-math.Sqrt2/2) > 1e-6 {
				t.Errorf("order %d: edge %.1f gain %v", order, edge, g)
			}
		}

		peak := 0.0
		for i := range 1000 {
			peak = math.Max(peak, cmplx.Abs(f.Response(float64(i)/1000)))
		}
		if math.Abs(peak-1) > 1e-4 {
			t.Errorf("order %d: peak gain %v, want 1", order, peak)
		}
	}
}

func TestButterworthBandstop(t *testing.T) {
	f, err := NewButterworthBandstop(2, 0.3, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if g := cmplx.Abs(f.Response(0)); math.Abs(g-1) > 1e-9 {
		t.Errorf("DC gain %v, want 1", g)
	}
	if g := cmplx.Abs(f.Response(0.4)); g > 0.05 {
		t.Errorf("stop-band gain %v", g)
	}
}

func TestButterworthDesignErrors(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Filter, error)
		cause error
	}{
		{"lowpass order 0", func() (*Filter, error) { return NewButterworthLowpass(0, 0.2) }, butterworth.ErrInvalidOrder},
		{"lowpass cutoff 1", func() (*Filter, error) { return NewButterworthLowpass(2, 1) }, butterworth.ErrInvalidFrequency},
		{"highpass cutoff 0", func() (*Filter, error) { return NewButterworthHighpass(2, 0) }, butterworth.ErrInvalidFrequency},
		{"bandpass reversed", func() (*Filter, error) { return NewButterworthBandpass(2, 0.4, 0.2) }, butterworth.ErrInvalidFrequency},
		{"bandpass order -1", func() (*Filter, error) { return NewButterworthBandpass(-1, 0.2, 0.4) }, butterworth.ErrInvalidOrder},
		{"bandstop empty band", func() (*Filter, error) { return NewButterworthBandstop(2, 0.3, 0.3) }, butterworth.ErrInvalidFrequency},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := tc.build()
			if f != nil {
				t.Fatal("failed design returned a filter")
			}
			if !errors.Is(err, ErrDesign) {
				t.Fatalf("got %v, want ErrDesign", err)
			}
			if !errors.Is(err, tc.cause) {
				t.Fatalf("got %v, want cause %v", err, tc.cause)
			}
		})
	}
}

func TestRootRaisedCosineZeroRolloff(t *testing.T) {
	f, err := NewRootRaisedCosine(9, 2, 0)
	if err != nil {
		t.Fatal(err)
	}

	if f.IsRecursive() {
		t.Fatal("RRC must be a pure FIR filter")
	}

	want := []float64{0, -2 / (3 * math.Pi), 0, 2 / math.Pi, 1, 2 / math.Pi, 0, -2 / (3 * math.Pi), 0}
	testutil.RequireSliceNearlyEqual(t, f.Feedforward(), want, 1e-12)

	// Its impulse response is the tap vector.
	ir := f.ImpulseResponse(9)
	for i, y := range ir {
		testutil.RequireComplexNearlyEqual(t, y, complex(want[i], 0), 1e-12)
	}
}

func TestRootRaisedCosineUnscaled(t *testing.T) {
	f, err := NewRootRaisedCosine(33, 4, 0.35)
	if err != nil {
		t.Fatal(err)
	}

	h := make([]float64, 33)
	if err := taps.RootRaisedCosine(h, 4, 0.35); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(h, f.Feedforward()); diff != "" {
		t.Errorf("taps (-want +got):\n%s", diff)
	}
}

func TestRaisedCosine(t *testing.T) {
	f, err := NewRaisedCosine(17, 4, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	b := f.Feedforward()
	if math.Abs(b[8]-1) > eps {
		t.Fatalf("centre tap %v, want 1", b[8])
	}
	if math.Abs(b[12]) > eps || math.Abs(b[4]) > eps {
		t.Fatalf("symbol-spaced taps %v %v, want 0", b[4], b[12])
	}
}

func TestBrickwallLowpass(t *testing.T) {
	f, err := NewBrickwallLowpass(63, 0.25)
	if err != nil {
		t.Fatal(err)
	}

	if f.IsRecursive() || len(f.Feedforward()) != 63 {
		t.Fatalf("want a 63-tap FIR, got recursive=%v taps=%d", f.IsRecursive(), len(f.Feedforward()))
	}

	if g := cmplx.Abs(f.Response(0)); math.Abs(g-1) > 0.01 {
		t.Errorf("DC gain %v", g)
	}
	if db := f.MagnitudeDB(0.75); db > -40 {
		t.Errorf("stop-band %v dB, want < -40 dB", db)
	}
}

func TestBrickwallLowpassWindowOption(t *testing.T) {
	ham, err := NewBrickwallLowpass(31, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	rect, err := NewBrickwallLowpass(31, 0.5, taps.WithWindow(window.TypeRectangular))
	if err != nil {
		t.Fatal(err)
	}

	if cmp.Equal(ham.Feedforward(), rect.Feedforward()) {
		t.Fatal("window option had no effect")
	}

	// The untapered centre tap is fc itself.
	if got := rect.Feedforward()[15]; math.Abs(got-0.5) > eps {
		t.Fatalf("centre tap %v, want 0.5", got)
	}
}

func TestBrickwallBandpass(t *testing.T) {
	f, err := NewBrickwallBandpass(95, 0.2, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if g := cmplx.Abs(f.Response(0.5)); math.Abs(g-1) > 0.01 {
		t.Errorf("centre gain %v", g)
	}
	for _, freq := range []float64{0, 0.2, 0.8, 1} {
		if g := cmplx.Abs(f.Response(freq)); g > 0.01 {
			t.Errorf("stop-band gain at %.1f: %v", freq, g)
		}
	}
}

func TestTapDesignErrors(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*Filter, error)
	}{
		{"rrc 0 taps", func() (*Filter, error) { return NewRootRaisedCosine(0, 4, 0.3) }},
		{"rrc negative taps", func() (*Filter, error) { return NewRootRaisedCosine(-5, 4, 0.3) }},
		{"rrc bad period", func() (*Filter, error) { return NewRootRaisedCosine(9, 0, 0.3) }},
		{"rrc bad rolloff", func() (*Filter, error) { return NewRootRaisedCosine(9, 4, 2) }},
		{"rc 0 taps", func() (*Filter, error) { return NewRaisedCosine(0, 4, 0.3) }},
		{"brickwall bp 0 taps", func() (*Filter, error) { return NewBrickwallBandpass(0, 0.1, 0.5) }},
		{"brickwall bp bad bandwidth", func() (*Filter, error) { return NewBrickwallBandpass(9, 0, 0.5) }},
		{"brickwall lp 0 taps", func() (*Filter, error) { return NewBrickwallLowpass(0, 0.5) }},
		{"brickwall lp bad cutoff", func() (*Filter, error) { return NewBrickwallLowpass(9, 0) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := tc.build()
			if f != nil {
				t.Fatal("failed design returned a filter")
			}
			if !errors.Is(err, ErrDesign) {
				t.Fatalf("got %v, want ErrDesign", err)
			}
		})
	}

	if _, err := NewBrickwallLowpass(9, 0); !errors.Is(err, taps.ErrInvalidParameter) {
		t.Fatalf("collaborator cause lost: %v", err)
	}
}

func TestTapDesignTooLarge(t *testing.T) {
	if _, err := NewBrickwallLowpass(MaxTaps+1, 0.5); !errors.Is(err, ErrAllocation) {
		t.Fatalf("got %v, want ErrAllocation", err)
	}
}

func TestButterworthOrderTooLarge(t *testing.T) {
	type design func(order int) (*Filter, error)

	lowpass := func(order int) (*Filter, error) { return NewButterworthLowpass(order, 0.2) }
	highpass := func(order int) (*Filter, error) { return NewButterworthHighpass(order, 0.2) }
	bandpass := func(order int) (*Filter, error) { return NewButterworthBandpass(order, 0.2, 0.4) }
	bandstop := func(order int) (*Filter, error) { return NewButterworthBandstop(order, 0.2, 0.4) }

	tests := []struct {
		name  string
		build design
		order int
	}{
		{"lowpass/MaxTaps", lowpass, MaxTaps},
		{"lowpass/MaxInt", lowpass, math.MaxInt},
		{"highpass/MaxTaps", highpass, MaxTaps},
		{"highpass/MaxInt/2", highpass, math.MaxInt / 2},
		{"bandpass/half", bandpass, MaxTaps / 2},
		{"bandpass/MaxTaps", bandpass, MaxTaps},
		{"bandpass/MaxInt/2", bandpass, math.MaxInt / 2},
		{"bandstop/MaxTaps", bandstop, MaxTaps},
		{"bandstop/MaxInt", bandstop, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.build(tt.order)
			if !errors.Is(err, ErrAllocation) {
				t.Fatalf("got %v, want ErrAllocation", err)
			}
			if f != nil {
				t.Fatal("filter returned alongside error")
			}
		})
	}
}
