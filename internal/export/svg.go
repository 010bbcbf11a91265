package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/render"
)

// FrameToSVG draws a frame as one <rect> per bar. Zero-height bars are
// skipped.
func FrameToSVG(frame render.Frame, scale float64) string {
	if scale <= 0 {
		scale = 1
	}
	width := float64(frame.Width) * scale
	height := float64(frame.Height) * scale

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g>
`, width, height, width, height, render.Hex(frame.Background)))

	for _, b := range frame.Bars {
		if b.Height <= 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(b.X)*scale, float64(b.Y)*scale, float64(b.Width)*scale, float64(b.Height)*scale, render.Hex(b.Color)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
