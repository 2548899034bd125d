package audio

import "math"

// RMSProfile computes one root-mean-square energy value per frameStride
// samples. The final partial window, if any, contributes one value as well.
// Empty input yields an empty profile.
func RMSProfile(samples []float64, frameStride int) []float64 {
	if len(samples) == 0 || frameStride <= 0 {
		return nil
	}

	frames := (len(samples) + frameStride - 1) / frameStride
	profile := make([]float64, 0, frames)

	for start := 0; start < len(samples); start += frameStride {
		end := start + frameStride
		if end > len(samples) {
			end = len(samples)
		}

		var sum float64
		for _, s := range samples[start:end] {
			sum += s * s
		}
		profile = append(profile, math.Sqrt(sum/float64(end-start)))
	}

	return profile
}
