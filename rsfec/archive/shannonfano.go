package archive

import "math"

// BuildShannonFanoCodes constructs a Shannon-Fano prefix code for the
// given probability distribution. Codewords are returned in order of
// decreasing probability.
func BuildShannonFanoCodes(probabilities []float64) (Codes, error) {
	sorted, err := checkDistribution(probabilities)
	if err != nil {
		return Codes{}, err
	}
	codewords := make([]string, len(sorted))
	if len(sorted) == 1 {
		codewords[0] = "0"
		return Codes{Probabilities: sorted, Codewords: codewords}, nil
	}
	shannonSplit(sorted, codewords)
	return Codes{Probabilities: sorted, Codewords: codewords}, nil
}

// shannonSplit recursively divides the range at the point where the
// probability masses of the two halves are closest to equal, appending
// 0 to the left half and 1 to the right half.
func shannonSplit(probs []float64, codes []string) {
	if len(probs) < 2 {
		return
	}
	split := splitIndex(probs)
	for i := range codes {
		if i < split {
			codes[i] += "0"
		} else {
			codes[i] += "1"
		}
	}
	shannonSplit(probs[:split], codes[:split])
	shannonSplit(probs[split:], codes[split:])
}

// splitIndex returns the boundary that minimizes the difference between
// the left and right probability sums. Always between 1 and len-1.
func splitIndex(probs []float64) int {
	var total float64
	for _, p := range probs {
		total += p
	}
	best := 1
	bestDiff := math.Inf(1)
	var left float64
	for i := 1; i < len(probs); i++ {
		left += probs[i-1]
		diff := math.Abs(left - (total - left))
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}
