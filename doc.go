// Package angle provides a planar angle value type.
//
// An Angle stores a radian measure normalized to the half-open interval
// (-π, π], so arithmetic on angles never accumulates whole turns and
// comparisons always see the shortest angular separation. Angles are plain
// values: every operation returns a new Angle and instances can be copied
// and shared freely.
package angle
