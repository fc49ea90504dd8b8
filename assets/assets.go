package assets

import (
	_ "embed"
)

// Resume is the PDF behind the hero's "Resume" button.
//
//go:embed resume.pdf
var Resume []byte
