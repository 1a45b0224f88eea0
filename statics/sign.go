package statics

import "math"

const rad2deg = 180 / math.Pi

// AngleDeg returns the angle between u and v in degrees, in [0, 180].
// Perpendicular vectors give exactly 90; a zero vector gives 0.
func AngleDeg(u, v [2]float64) float64 {
	dot := u[0]*v[0] + u[1]*v[1]
	cross := u[0]*v[1] - u[1]*v[0]
	if dot == 0 && cross != 0 {
		return 90
	}

	return math.Atan2(math.Abs(cross), dot) * rad2deg
}

// Signed applies the sign rule: an edge whose reciprocal makes an angle
// strictly below 90° points the same way as it and keeps a positive
// magnitude; at 90° and above the magnitude is negated.
func Signed(angle, magnitude float64) float64 {
	if angle < 90 {
		return magnitude
	}

	return -magnitude
}
