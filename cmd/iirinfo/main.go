// Command iirinfo prints the coefficients and magnitude response of a designed filter.
//
// Usage:
//
//	iirinfo [flags] design
//
// Examples:
//
//	iirinfo -order 4 -fc 0.2 lowpass
//	iirinfo -order 2 -f1 0.2 -f2 0.4 bandpass
//	iirinfo -taps 33 -period 4 -beta 0.35 rrc
//	iirinfo -taps 63 -fc 0.25 -window kaiser -alpha 6 brickwall-lp
//	iirinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-iir/dsp/filter/design/taps"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
	"github.com/cwbudde/algo-iir/dsp/window"
)

type params struct {
	order        int
	taps         int
	fc, f1, f2   float64
	period, beta float64
	bandwidth    float64
	center       float64
	tapOpts      []taps.Option
}

type designEntry struct {
	name  string
	about string
	build func(p params) (*iir.Filter, error)
}

var registry = []designEntry{
	{"lowpass", "Butterworth low-pass (-order, -fc)", func(p params) (*iir.Filter, error) {
		return iir.NewButterworthLowpass(p.order, p.fc)
	}},
	{"highpass", "Butterworth high-pass (-order, -fc)", func(p params) (*iir.Filter, error) {
		return iir.NewButterworthHighpass(p.order, p.fc)
	}},
	{"bandpass", "Butterworth band-pass (-order, -f1, -f2)", func(p params) (*iir.Filter, error) {
		return iir.NewButterworthBandpass(p.order, p.f1, p.f2)
	}},
	{"bandstop", "Butterworth band-stop (-order, -f1, -f2)", func(p params) (*iir.Filter, error) {
		return iir.NewButterworthBandstop(p.order, p.f1, p.f2)
	}},
	{"rrc", "root-raised-cosine pulse (-taps, -period, -beta)", func(p params) (*iir.Filter, error) {
		return iir.NewRootRaisedCosine(p.taps, p.period, p.beta)
	}},
	{"rc", "raised-cosine pulse (-taps, -period, -beta)", func(p params) (*iir.Filter, error) {
		return iir.NewRaisedCosine(p.taps, p.period, p.beta)
	}},
	{"brickwall-lp", "windowed ideal low-pass (-taps, -fc, -window)", func(p params) (*iir.Filter, error) {
		return iir.NewBrickwallLowpass(p.taps, p.fc, p.tapOpts...)
	}},
	{"brickwall-bp", "windowed ideal band-pass (-taps, -bw, -center, -window)", func(p params) (*iir.Filter, error) {
		return iir.NewBrickwallBandpass(p.taps, p.bandwidth, p.center, p.tapOpts...)
	}},
}

func main() {
	var p params
	flag.IntVar(&p.order, "order", 2, "Butterworth order")
	flag.IntVar(&p.taps, "taps", 31, "number of FIR taps")
	flag.Float64Var(&p.fc, "fc", 0.25, "cutoff, normalized to Nyquist (0..1)")
	flag.Float64Var(&p.f1, "f1", 0.2, "lower band edge, normalized to Nyquist")
	flag.Float64Var(&p.f2, "f2", 0.4, "upper band edge, normalized to Nyquist")
	flag.Float64Var(&p.period, "period", 4, "symbol period in samples")
	flag.Float64Var(&p.beta, "beta", 0.35, "roll-off factor (0..1)")
	flag.Float64Var(&p.bandwidth, "bw", 0.2, "brickwall band-pass width, normalized to Nyquist")
	flag.Float64Var(&p.center, "center", 0.5, "brickwall band-pass center, normalized to Nyquist")
	winName := flag.String("window", "hamming", "taper for brickwall designs")
	alpha := flag.Float64("alpha", math.NaN(), "alpha/beta parameter for parametric windows (kaiser, tukey)")
	normalize := flag.Bool("normalize", false, "scale brickwall taps to unit passband-centre gain")
	points := flag.Int("points", 11, "number of frequencies in the magnitude table")
	list := flag.Bool("list", false, "list available designs")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: iirinfo [flags] design\n\n")
		fmt.Fprintf(os.Stderr, "Prints coefficients and magnitude response of a designed filter.\n")
		fmt.Fprintf(os.Stderr, "Frequencies are normalized to Nyquist.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -order 4 -fc 0.2 lowpass\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -taps 33 -period 4 -beta 0.35 rrc\n")
		fmt.Fprintf(os.Stderr, "  iirinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	entry, ok := lookup(flag.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown design %q (use -list to see available)\n", flag.Arg(0))
		os.Exit(1)
	}

	wt, err := window.Parse(strings.ToLower(*winName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	a := window.DefaultAlpha(wt)
	if !math.IsNaN(*alpha) {
		a = *alpha
	}

	p.tapOpts = append(p.tapOpts, taps.WithWindow(wt, window.WithAlpha(a)))
	if *normalize {
		p.tapOpts = append(p.tapOpts, taps.WithNormalize())
	}

	f, err := entry.build(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer f.Release()

	if err := printFilter(f, *points); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	entries := append([]designEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.name, e.about)
	}
	_ = tw.Flush()
}

func lookup(name string) (designEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return designEntry{}, false
}

func printFilter(f *iir.Filter, points int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	b, a := f.Feedforward(), f.Feedback()
	fmt.Fprintf(tw, "Tap\tFeedforward\tFeedback\n")
	fmt.Fprintf(tw, "---\t-----------\t--------\n")
	for i := range max(len(a), len(b)) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, column(b, i), column(a, i))
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Frequency\tMagnitude [dB]\tPhase [rad]\n")
	fmt.Fprintf(tw, "---------\t--------------\t-----------\n")
	for k := range points {
		freq := 0.0
		if points > 1 {
			freq = float64(k) / float64(points-1)
		}
		h := f.Response(freq)
		fmt.Fprintf(tw, "%.4f\t%.2f\t%.4f\n", freq, f.MagnitudeDB(freq), math.Atan2(imag(h), real(h)))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func column(c []float64, i int) string {
	if i >= len(c) {
		return ""
	}
	return fmt.Sprintf("%.10f", c[i])
}
