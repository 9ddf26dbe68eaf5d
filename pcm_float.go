package wavtrim

import "math"

const (
	scalePCMInt16 = 32768.0
	maxPCMInt16   = 32767
	minPCMInt16   = -32768
)

func normalizePCMInt16(sample int16) float32 {
	return float32(float64(sample) / scalePCMInt16)
}

// float32ToPCMInt16 scales by 2^15, rounds half away from zero and clamps to
// the int16 range. NaN encodes as silence.
func float32ToPCMInt16(value float32) int16 {
	if math.IsNaN(float64(value)) {
		return 0
	}

	scaled := math.Round(float64(value) * scalePCMInt16)

	if scaled > maxPCMInt16 {
		return maxPCMInt16
	}

	if scaled < minPCMInt16 {
		return minPCMInt16
	}

	return int16(scaled)
}

func abs32(v float32) float64 {
	return math.Abs(float64(v))
}
