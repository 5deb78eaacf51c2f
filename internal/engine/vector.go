package engine

import "math"

// cosineSimilarity returns the cosine of the angle between two vectors,
// in [-1,1]. Mismatched or zero-magnitude vectors score 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// rescaleSimilarity maps cosine similarity from [-1,1] to [0,1].
func rescaleSimilarity(sim float64) float64 {
	return (sim + 1) / 2
}
