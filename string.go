package angle

import "fmt"

// String renders the angle in degrees for diagnostics, e.g. "90deg".
// The format is not parseable and has no inverse.
func (a Angle) String() string {
	return fmt.Sprintf("%vdeg", a.Degrees())
}
