package wavtrim

// LoudestWindowStart returns the index of the first sample of the
// length-sample window with the largest sum of absolute amplitudes. Ties go
// to the earliest window. When length covers the whole input the start is 0.
//
// The running sum is kept in float64. It is exact for 16-bit PCM mono input
// and for its stereo downmix, whose samples are multiples of 2^-16; for such
// input the result matches a brute-force search. Downmixes of three or more
// channels may differ from one in the last bit.
func LoudestWindowStart(samples []float32, length int) int {
	n := len(samples)
	if length <= 0 || length >= n {
		return 0
	}

	var sum float64
	for _, s := range samples[:length] {
		sum += abs32(s)
	}

	loudestEnd := length
	loudest := sum

	for i := length; i < n; i++ {
		sum -= abs32(samples[i-length])
		sum += abs32(samples[i])

		if sum > loudest {
			loudest = sum
			loudestEnd = i + 1
		}
	}

	return loudestEnd - length
}

// LoudestWindow returns the loudest length-sample window of samples. If
// length >= len(samples) the input is returned unchanged; a non-positive
// length yields an empty window. The result shares memory with samples.
func LoudestWindow(samples []float32, length int) []float32 {
	if length >= len(samples) {
		return samples
	}

	if length <= 0 {
		return samples[:0]
	}

	start := LoudestWindowStart(samples, length)

	return samples[start : start+length]
}

// AverageVolume is the mean absolute amplitude of window over length
// samples. length is the requested window size, which can exceed
// len(window) for short inputs.
func AverageVolume(window []float32, length int) float32 {
	if length <= 0 {
		return 0
	}

	var total float64
	for _, s := range window {
		total += abs32(s)
	}

	return float32(total / float64(length))
}
