package prng

// Summary holds sample statistics for a run of generator output mapped to
// [0, 1). A uniform source converges on mean 0.5 and variance 1/12.
type Summary struct {
	Mean     float64
	Variance float64
}

// Measure draws n samples from s and summarizes them. Variance is the
// unbiased sample variance (n-1 divisor); a single sample reports zero.
func Measure(s Source, n int) Summary {
	if n <= 0 {
		return Summary{}
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = Float64(s)
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(n)

	if n == 1 {
		return Summary{Mean: mean}
	}
	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}
	return Summary{Mean: mean, Variance: sq / float64(n-1)}
}
