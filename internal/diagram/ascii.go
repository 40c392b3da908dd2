package diagram

import (
	"github.com/guptarohit/asciigraph"

	"Girder/internal/statics"
)

// Sketch draws one diagram of a force profile as an ASCII chart for
// terminal output. The full profile is downsampled to roughly the chart
// width so the rendering stays legible at high sample counts.
func Sketch(profile statics.ForceProfile, kind Kind, height int) string {
	if height <= 0 {
		height = 12
	}

	const width = 72
	values := kind.values(profile)

	step := len(values) / width
	if step < 1 {
		step = 1
	}
	plotted := make([]float64, 0, width+1)
	for i := 0; i < len(values); i += step {
		plotted = append(plotted, values[i])
	}
	if len(values) > 0 && (len(values)-1)%step != 0 {
		plotted = append(plotted, values[len(values)-1])
	}

	return asciigraph.Plot(plotted,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(kind.String()),
		asciigraph.Precision(1),
	)
}
