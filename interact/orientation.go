package interact

// OrientationSample is one device-orientation reading in degrees. Either
// angle may be missing.
type OrientationSample struct {
	Beta  *float64
	Gamma *float64
}

// Angles builds a sample with both angles present.
func Angles(beta, gamma float64) OrientationSample {
	return OrientationSample{Beta: &beta, Gamma: &gamma}
}

// NormalizeOrientation maps gamma to nx = gamma/90 and beta to
// ny = (beta-90)/90, so a phone held upright reads (0, 0). Both are clamped
// to [-1, 1]. ok is false when either angle is missing.
func NormalizeOrientation(s OrientationSample) (nx, ny float64, ok bool) {
	if s.Beta == nil || s.Gamma == nil {
		return 0, 0, false
	}
	nx = clamp(*s.Gamma/90, -1, 1)
	ny = clamp((*s.Beta-90)/90, -1, 1)
	return nx, ny, true
}
