package gamemath

// VisualRadius mirrors the server's display radius curve. Used as a fallback
// when a snapshot omits the radius field.
func VisualRadius(length float64) float64 {
	extra := length / 15
	if extra > 28 {
		extra = 28
	}
	return 6 + float64(int(extra))
}

// HitboxRadius mirrors the server's collision radius: small snakes get a near
// full-size hitbox, large snakes a much smaller one. Drawn as the debug ring.
func HitboxRadius(length float64) float64 {
	vis := VisualRadius(length)
	switch {
	case length < 50:
		return vis * 0.9
	case length < 200:
		return vis * 0.7
	default:
		return vis * 0.4
	}
}
