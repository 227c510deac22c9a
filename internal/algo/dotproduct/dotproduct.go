// Package dotproduct benchmarks dot-product implementations:
// dot(a, b) = Σ a[i]*b[i] over float32 slices.
package dotproduct

// Original is the reference implementation: a plain indexed loop.
// Zero-length input yields 0.
func Original(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Unrolled4 processes four elements per iteration with four independent
// accumulators, breaking the serial dependency chain of Original.
func Unrolled4(a, b []float32) float32 {
	n := len(a)
	chunks := n / 4

	var sum0, sum1, sum2, sum3 float32
	for i := 0; i < chunks; i++ {
		idx := i * 4
		sum0 += a[idx] * b[idx]
		sum1 += a[idx+1] * b[idx+1]
		sum2 += a[idx+2] * b[idx+2]
		sum3 += a[idx+3] * b[idx+3]
	}

	for i := chunks * 4; i < n; i++ {
		sum0 += a[i] * b[i]
	}

	return (sum0 + sum1) + (sum2 + sum3)
}

// Unrolled8 widens the unroll to eight accumulators, enough to cover
// the FMA latency of current cores.
func Unrolled8(a, b []float32) float32 {
	n := len(a)
	chunks := n / 8

	var s [8]float32
	for i := 0; i < chunks; i++ {
		idx := i * 8
		s[0] += a[idx] * b[idx]
		s[1] += a[idx+1] * b[idx+1]
		s[2] += a[idx+2] * b[idx+2]
		s[3] += a[idx+3] * b[idx+3]
		s[4] += a[idx+4] * b[idx+4]
		s[5] += a[idx+5] * b[idx+5]
		s[6] += a[idx+6] * b[idx+6]
		s[7] += a[idx+7] * b[idx+7]
	}

	for i := chunks * 8; i < n; i++ {
		s[0] += a[i] * b[i]
	}

	return ((s[0] + s[1]) + (s[2] + s[3])) + ((s[4] + s[5]) + (s[6] + s[7]))
}
