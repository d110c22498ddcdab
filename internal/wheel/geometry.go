package wheel

import "math"

// Angles are in degrees, measured clockwise from 12 o'clock. Segment i
// covers wheel-frame angles [i*s, (i+1)*s). The wheel turns clockwise by its
// rotation and the pointer never moves from 12 o'clock.

// SegmentAngle is the width of one of n equal segments.
func SegmentAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// Normalize maps deg into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// SegmentUnder returns the segment drawn at screen angle phi when the wheel
// is turned by rotation, or -1 if n is not positive.
func SegmentUnder(phi, rotation float64, n int) int {
	if n <= 0 {
		return -1
	}
	i := int(Normalize(phi-rotation) / SegmentAngle(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// SegmentAt returns the segment under the pointer.
func SegmentAt(rotation float64, n int) int {
	return SegmentUnder(0, rotation, n)
}

// SegmentCenter returns the screen angle of the middle of segment index.
func SegmentCenter(index int, rotation float64, n int) float64 {
	return Normalize((float64(index)+0.5)*SegmentAngle(n) + rotation)
}

// NextRotation returns the cumulative rotation after a spin that lands on
// index: fullTurns whole turns plus the offset, in [0, 360), that brings the
// middle of the segment under the pointer. The result is never below prev.
func NextRotation(prev float64, index, n, fullTurns int) float64 {
	target := Normalize(-(float64(index) + 0.5) * SegmentAngle(n))
	delta := Normalize(target - Normalize(prev))
	return prev + float64(fullTurns)*360 + delta
}
