package gamemath

import "math"

// NormalizeAngle wraps an angle into (-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// AngleDifference returns the shortest signed arc from source to target.
// Turning through the ±π boundary takes the short way around.
func AngleDifference(source, target float64) float64 {
	return NormalizeAngle(target - source)
}

// Dist returns the Euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
