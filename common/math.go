package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Dist returns the Euclidean distance between (x1, y1) and (x2, y2).
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
