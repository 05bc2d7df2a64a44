package butterworth

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidOrder reports an order below 1.
	ErrInvalidOrder = errors.New("butterworth: order must be >= 1")
	// ErrInvalidFrequency reports a cutoff outside (0, 1) or an empty band.
	ErrInvalidFrequency = errors.New("butterworth: invalid normalized frequency")
)

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	return nil
}

func validateCutoff(fc float64) error {
	if !(fc > 0 && fc < 1) {
		return fmt.Errorf("%w: cutoff %g not in (0, 1)", ErrInvalidFrequency, fc)
	}
	return nil
}

func validateBand(f1, f2 float64) error {
	if !(f1 > 0 && f1 < 1) || !(f2 > 0 && f2 < 1) {
		return fmt.Errorf("%w: band edges %g, %g not in (0, 1)", ErrInvalidFrequency, f1, f2)
	}
	if f1 >= f2 {
		return fmt.Errorf("%w: lower edge %g must be below upper edge %g", ErrInvalidFrequency, f1, f2)
	}
	return nil
}

// poleAngle returns the angle of the k-th analog prototype pole.
func poleAngle(order, k int) float64 {
	return math.Pi * float64(2*k+1) / float64(2*order)
}

// LowpassFeedback returns the order+1 denominator coefficients of an
// order-n low-pass with cutoff fc.
func LowpassFeedback(order int, fc float64) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateCutoff(fc); err != nil {
		return nil, err
	}

	st, ct := math.Sincos(math.Pi * fc)

	factors := make([][]complex128, order)
	for k := range order {
		sp, cp := math.Sincos(poleAngle(order, k))
		a := 1 + st*sp
		factors[k] = []complex128{1, complex(-ct/a, -st*cp/a)}
	}

	return realPart(polyProduct(factors)), nil
}

// LowpassFeedforward returns the order+1 binomial numerator coefficients of
// an order-n low-pass.
func LowpassFeedforward(order int) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	return binomial(order), nil
}

// LowpassScale returns the factor that brings the low-pass DC gain to 1.
func LowpassScale(order int, fc float64) (float64, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	if err := validateCutoff(fc); err != nil {
		return 0, err
	}

	omega := math.Pi * fc
	fomega := math.Sin(omega)
	parg0 := math.Pi / float64(2*order)

	sf := 1.0
	for k := range order / 2 {
		sf *= 1 + fomega*math.Sin(float64(2*k+1)*parg0)
	}

	s, c := math.Sincos(omega / 2)
	if order%2 != 0 {
		sf *= s + c
	}

	return math.Pow(s, float64(order)) / sf, nil
}

// HighpassFeedback returns the denominator of an order-n high-pass. It shares
// its poles with the low-pass of the same cutoff.
func HighpassFeedback(order int, fc float64) ([]float64, error) {
	return LowpassFeedback(order, fc)
}

// HighpassFeedforward returns the binomial numerator with alternating signs.
func HighpassFeedforward(order int) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	return alternate(binomial(order)), nil
}

// HighpassScale returns the factor that brings the high-pass Nyquist gain
// to 1.
func HighpassScale(order int, fc float64) (float64, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	if err := validateCutoff(fc); err != nil {
		return 0, err
	}

	omega := math.Pi * fc
	fomega := math.Sin(omega)
	parg0 := math.Pi / float64(2*order)

	sf := 1.0
	for k := range order / 2 {
		sf *= 1 + fomega*math.Sin(float64(2*k+1)*parg0)
	}

	s, c := math.Sincos(omega / 2)
	if order%2 != 0 {
		sf *= c + s
	}

	return math.Pow(c, float64(order)) / sf, nil
}

// BandpassFeedback returns the 2*order+1 denominator coefficients of an
// order-n band-pass between f1 and f2.
func BandpassFeedback(order int, f1, f2 float64) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateBand(f1, f2); err != nil {
		return nil, err
	}

	return bandDenominator(order, f1, f2, 1), nil
}

// BandpassFeedforward returns the 2*order+1 numerator coefficients: the
// high-pass numerator with zeros interleaved.
func BandpassFeedforward(order int) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	hp := alternate(binomial(order))

	b := make([]float64, 2*order+1)
	for i, c := range hp {
		b[2*i] = c
	}

	return b, nil
}

// BandpassScale returns the factor that brings the band-pass peak gain to 1.
func BandpassScale(order int, f1, f2 float64) (float64, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	if err := validateBand(f1, f2); err != nil {
		return 0, err
	}

	return bandScale(order, 1/math.Tan(math.Pi*(f2-f1)/2)), nil
}

// BandstopFeedback returns the 2*order+1 denominator coefficients of an
// order-n band-stop between f1 and f2.
func BandstopFeedback(order int, f1, f2 float64) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateBand(f1, f2); err != nil {
		return nil, err
	}

	return bandDenominator(order, f1, f2, -1), nil
}

// BandstopFeedforward returns the 2*order+1 numerator coefficients of
// (1 + alpha*z^-1 + z^-2)^order, which places the zeros at the stop-band
// centre.
func BandstopFeedforward(order int, f1, f2 float64) ([]float64, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := validateBand(f1, f2); err != nil {
		return nil, err
	}

	alpha := -2 * math.Cos(math.Pi*(f2+f1)/2) / math.Cos(math.Pi*(f2-f1)/2)

	factors := make([][]complex128, order)
	for k := range factors {
		factors[k] = []complex128{1, complex(alpha, 0), 1}
	}

	return realPart(polyProduct(factors)), nil
}

// BandstopScale returns the factor that brings the band-stop DC gain to 1.
func BandstopScale(order int, f1, f2 float64) (float64, error) {
	if err := validateOrder(order); err != nil {
		return 0, err
	}
	if err := validateBand(f1, f2); err != nil {
		return 0, err
	}

	return bandScale(order, math.Tan(math.Pi*(f2-f1)/2)), nil
}

// bandDenominator multiplies the order quadratic pole-pair factors of a
// band transform. sign selects the band-pass (+1) or band-stop (-1) pole
// orientation; both yield the same real polynomial.
func bandDenominator(order int, f1, f2, sign float64) []float64 {
	cp := math.Cos(math.Pi * (f2 + f1) / 2)
	st, ct := math.Sincos(math.Pi * (f2 - f1) / 2)
	s2t := 2 * st * ct
	c2t := 2*ct*ct - 1

	factors := make([][]complex128, order)
	for k := range order {
		sp, cpk := math.Sincos(poleAngle(order, k))
		a := 1 + s2t*sp
		factors[k] = []complex128{
			1,
			complex(-2*cp*(ct+st*sp)/a, -sign*2*cp*st*cpk/a),
			complex(c2t/a, sign*s2t*cpk/a),
		}
	}

	return realPart(polyProduct(factors))
}

// bandScale returns 1 / Re(prod_k (t + sin(theta_k) - j*cos(theta_k))).
func bandScale(order int, t float64) float64 {
	prod := complex(1, 0)
	for k := range order {
		sp, cp := math.Sincos(poleAngle(order, k))
		prod *= complex(t+sp, -cp)
	}

	return 1 / real(prod)
}
