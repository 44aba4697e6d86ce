package gamemath

import "math"

// ApplyGravity adds gravity to a vertical speed, capped at maxFall when
// maxFall is positive.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if maxFall > 0 && speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Approach moves current toward target by the fraction t (0..1).
func Approach(current, target, t float64) float64 {
	return current + (target-current)*t
}

// ClampToSpan centres a window of size view on target, keeping it inside
// [0, span]. Spans smaller than the window are centred.
func ClampToSpan(target, view, span float64) float64 {
	if span <= 0 {
		return target
	}
	if span <= view {
		return span / 2
	}
	return Clamp(target, view/2, span-view/2)
}
