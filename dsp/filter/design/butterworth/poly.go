package butterworth

// polyProduct multiplies polynomials given as ascending coefficient slices.
func polyProduct(factors [][]complex128) []complex128 {
	out := []complex128{1}
	for _, f := range factors {
		next := make([]complex128, len(out)+len(f)-1)
		for i, a := range out {
			for j, b := range f {
				next[i+j] += a * b
			}
		}
		out = next
	}
	return out
}

func realPart(c []complex128) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out
}

// binomial returns the coefficients of (1 + z^-1)^n.
func binomial(n int) []float64 {
	out := make([]float64, n+1)
	out[0] = 1
	for i := 1; i <= n; i++ {
		out[i] = out[i-1] * float64(n-i+1) / float64(i)
	}
	return out
}

// alternate negates the odd-indexed coefficients in place and returns c.
func alternate(c []float64) []float64 {
	for i := 1; i < len(c); i += 2 {
		c[i] = -c[i]
	}
	return c
}
