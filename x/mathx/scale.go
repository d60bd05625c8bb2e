package mathx

import "golang.org/x/exp/constraints"

// RoundDiv returns a/b rounded half up; 0 when b is 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// MapU16 linearly maps x from [inMin,inMax] onto [outMin,outMax], truncating.
// Inputs outside the source range saturate; a degenerate source range
// yields outMin.
func MapU16(x, inMin, inMax, outMin, outMax uint16) uint16 {
	if inMax <= inMin {
		return outMin
	}
	x = Clamp(x, inMin, inMax)
	span := int64(outMax) - int64(outMin)
	return uint16(int64(outMin) + int64(x-inMin)*span/int64(inMax-inMin))
}
