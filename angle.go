package angle

import "math"

// RightAngle is the radian measure of one right angle (a quarter turn).
const RightAngle = math.Pi / 2

const fullTurn = 2 * math.Pi

// Angle is a radian measure normalized to the range (-π, π].
// The zero value is a zero angle.
type Angle struct {
	value float64
}

// Radians returns the Angle for a radian measure of any magnitude.
// NaN and ±Inf propagate to an Angle whose value is NaN; such an Angle
// compares false to everything, including itself.
func Radians(value float64) Angle {
	return Angle{value: normalize(value)}
}

// Degrees returns the Angle for a measure given in degrees.
func Degrees(value float64) Angle {
	return Radians(value * (math.Pi / 180))
}

// Radians returns the normalized value of the angle in radians.
func (a Angle) Radians() float64 {
	return a.value
}

// Degrees returns the normalized value of the angle in degrees,
// in the range (-180, 180].
func (a Angle) Degrees() float64 {
	return a.value * (180 / math.Pi)
}

// Abs returns the absolute value of the angle. The stored value is already
// in (-π, π], so the result lands in [0, π] without re-normalizing.
func (a Angle) Abs() Angle {
	return Angle{value: math.Abs(a.value)}
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.value)
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.value)
}

func (a Angle) Add(other Angle) Angle {
	return Radians(a.value + other.value)
}

func (a Angle) Sub(other Angle) Angle {
	return Radians(a.value - other.value)
}

// IsWithin reports whether the shortest angular separation between a and
// other is strictly less than difference. The tolerance is itself an Angle
// and wraps like any other angle, so a difference of 400° behaves as 40°.
// A zero or negative difference is never within.
func (a Angle) IsWithin(other, difference Angle) bool {
	return a.Sub(other).Abs().value < difference.value
}

// normalize maps a radian measure of any magnitude into (-π, π].
// A half turn always maps to +π, never -π.
func normalize(value float64) float64 {
	value = math.Mod(value, fullTurn)

	if value > math.Pi {
		value -= fullTurn
	} else if value <= -math.Pi {
		value += fullTurn
	}

	return value
}
