package archive

import (
	"errors"
	"math"
)

// ErrBadDistribution is returned when a probability distribution is empty
// or does not sum to 1.
var ErrBadDistribution = errors.New("archive: invalid probability distribution")

const probabilitySumTolerance = 1e-9

// Codes holds a prefix code built for a probability distribution. The
// i-th code string corresponds to the i-th probability, ordered by
// decreasing probability.
type Codes struct {
	Probabilities []float64
	Codewords     []string
}

// MeanCodeLength returns the expected code length in bits per symbol.
func (c Codes) MeanCodeLength() float64 {
	var mean float64
	for i, p := range c.Probabilities {
		mean += p * float64(len(c.Codewords[i]))
	}
	return mean
}

// Entropy returns the Shannon entropy of the distribution in bits.
func (c Codes) Entropy() float64 {
	var h float64
	for _, p := range c.Probabilities {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// RelativeEfficiency returns entropy divided by mean code length. A
// value of 1 means the code achieves the entropy bound.
func (c Codes) RelativeEfficiency() float64 {
	return c.Entropy() / c.MeanCodeLength()
}

// StatisticalCompression returns the ratio between the fixed-width
// encoding of the alphabet and the mean code length.
func (c Codes) StatisticalCompression() float64 {
	fixed := math.Ceil(math.Log2(float64(len(c.Probabilities))))
	return fixed / c.MeanCodeLength()
}

// checkDistribution validates and returns a copy of the probabilities
// sorted in decreasing order.
func checkDistribution(probabilities []float64) ([]float64, error) {
	if len(probabilities) == 0 {
		return nil, ErrBadDistribution
	}
	var sum float64
	for _, p := range probabilities {
		if p < 0 || p > 1 {
			return nil, ErrBadDistribution
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilitySumTolerance {
		return nil, ErrBadDistribution
	}
	sorted := make([]float64, len(probabilities))
	copy(sorted, probabilities)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] > sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted, nil
}
