// Package palette precomputes perceptual color ramps for animated
// scalars.
//
// A [Ramp] blends two endpoint colors through Lab space once at
// construction, then serves lookups by normalized position. Feeding it an
// animated value gives smooth, perceptually even color motion without
// per-frame color math: animate a float with the tween package and call
// [Ramp.At] with it when drawing.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Ramp is a precomputed color gradient indexed by a scalar in [0, 1].
type Ramp struct {
	table []color.RGBA
}

// New builds a ramp of steps colors running from one endpoint to the
// other. Endpoints accept CSS hex strings ("#36ff1f") or SVG 1.1 color
// names ("springgreen"). Steps must be at least 2; the first and last
// table entries land exactly on the parsed endpoints.
func New(from, to string, steps int) (*Ramp, error) {
	if steps < 2 {
		return nil, fmt.Errorf("palette: need at least 2 steps, got %d", steps)
	}
	start, err := ParseColor(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseColor(to)
	if err != nil {
		return nil, err
	}

	table := make([]color.RGBA, steps)
	for i := range table {
		blended := start.BlendLab(end, float64(i)/float64(steps-1)).Clamped()
		r, g, b := blended.RGB255()
		table[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return &Ramp{table: table}, nil
}

// At returns the ramp color at position t. Positions outside [0, 1]
// clamp to the endpoints.
func (r *Ramp) At(t float64) color.RGBA {
	if t <= 0 {
		return r.table[0]
	}
	if t >= 1 {
		return r.table[len(r.table)-1]
	}
	return r.table[int(t*float64(len(r.table)-1)+0.5)]
}

// Len returns the number of precomputed entries.
func (r *Ramp) Len() int {
	return len(r.table)
}

// ParseColor resolves a CSS hex string or an SVG 1.1 color name.
func ParseColor(s string) (colorful.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("palette: parse %q: %w", s, err)
		}
		return c, nil
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("palette: unknown color name %q", s)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}
