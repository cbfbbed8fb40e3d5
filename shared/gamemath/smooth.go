package gamemath

// LerpFraction converts a smoothing rate and an elapsed time into a lerp
// fraction, clamped to 1 so a long frame can never overshoot the target.
func LerpFraction(rate, dt float64) float64 {
	f := rate * dt
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// Approach moves current toward target by fraction of the remaining distance.
// This is a first-order low-pass filter: it converges asymptotically and
// never oscillates.
func Approach(current, target, fraction float64) float64 {
	return current + (target-current)*fraction
}

// ApproachAngle is Approach over the shortest arc, so a target crossing the
// ±π boundary does not spin the long way around.
func ApproachAngle(current, target, fraction float64) float64 {
	return NormalizeAngle(current + AngleDifference(current, target)*fraction)
}
