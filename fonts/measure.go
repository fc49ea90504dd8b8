package fonts

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Width is the advance of s in pixels.
func Width(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

// LineHeight is the face's ascent plus descent, in pixels.
func LineHeight(face font.Face) float64 {
	m := face.Metrics()
	return fixedToFloat(m.Ascent + m.Descent)
}

// Ascent is the baseline offset from the top of a line.
func Ascent(face font.Face) float64 {
	return fixedToFloat(face.Metrics().Ascent)
}

// Wrap breaks s into lines no wider than width. Words longer than width get
// a line of their own.
func Wrap(face font.Face, s string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if Width(face, candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// WrappedHeight is the height of Wrap(face, s, width) at the face's line
// height times spacing.
func WrappedHeight(face font.Face, s string, width, spacing float64) float64 {
	return float64(len(Wrap(face, s, width))) * LineHeight(face) * spacing
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
