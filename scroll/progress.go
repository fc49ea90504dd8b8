package scroll

import "math"

// Progress is scrollTop / (docHeight - viewportHeight) clamped to [0, 1].
// The denominator is clamped to at least 1 so a page shorter than the
// viewport reads 0 instead of dividing by zero.
func Progress(scrollTop, docHeight, viewportHeight float64) float64 {
	denom := math.Max(1, docHeight-viewportHeight)
	return clamp01(scrollTop / denom)
}

// MaxScroll is the largest valid scroll offset for the document.
func MaxScroll(docHeight, viewportHeight float64) float64 {
	return math.Max(0, docHeight-viewportHeight)
}

// Clamp keeps top within [0, MaxScroll].
func Clamp(top, docHeight, viewportHeight float64) float64 {
	return math.Max(0, math.Min(MaxScroll(docHeight, viewportHeight), top))
}
